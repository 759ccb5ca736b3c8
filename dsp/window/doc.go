// Package window builds the edge tapers applied to seismic traces before
// filtering or spectral work.
package window
