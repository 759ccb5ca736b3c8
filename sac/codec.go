package sac

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/lunixbochs/struc"
)

// Layout of the on-disk header.
const (
	textSlot      = 8
	textBlockSize = (NumTexts + 1) * textSlot // kevnm takes two slots

	// HeaderSize is the size of the encoded header in bytes.
	HeaderSize = 4*(NumFloats+NumInts+NumBools) + textBlockSize

	versionOffset = 4 * (NumFloats + int(Nvhdr))
)

// rawHeader is the wire image of Header.
type rawHeader struct {
	Floats [NumFloats]float32
	Ints   [NumInts]int32
	Bools  [NumBools]int32
	Text   [textBlockSize]byte
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	order binary.ByteOrder
}

// WithByteOrder selects the byte order of numeric fields. The default is
// big-endian regardless of host order.
func WithByteOrder(order binary.ByteOrder) EncodeOption {
	return func(c *encodeConfig) {
		if order != nil {
			c.order = order
		}
	}
}

// DetectByteOrder inspects the version tag and returns the byte order the
// record was written in.
func DetectByteOrder(data []byte) (binary.ByteOrder, error) {
	if len(data) < HeaderSize {
		return nil, formatf("record too short: %d bytes, header needs %d", len(data), HeaderSize)
	}
	tag := data[versionOffset : versionOffset+4]
	switch {
	case binary.NativeEndian.Uint32(tag) == HeaderVersion:
		return binary.NativeEndian, nil
	case swapped(binary.NativeEndian).Uint32(tag) == HeaderVersion:
		return swapped(binary.NativeEndian), nil
	default:
		return nil, formatf("unrecognized header version %d", int32(binary.BigEndian.Uint32(tag)))
	}
}

func swapped(order binary.ByteOrder) binary.ByteOrder {
	if order.Uint16([]byte{0, 1}) == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func isNative(order binary.ByteOrder) bool {
	return order.Uint16([]byte{0, 1}) == binary.NativeEndian.Uint16([]byte{0, 1})
}

// Decode parses a SAC record. The byte order is detected from the version
// tag; foreign-endian records are swapped unless WithAutoSwap(false) is
// given. Text fields, including the 16-byte kevnm taken as one field, lose
// trailing spaces and NUL bytes, matching what SetText stores.
func Decode(data []byte, opts ...Option) (*Trace, error) {
	cfg := applyOptions(opts)

	order, err := DetectByteOrder(data)
	if err != nil {
		return nil, err
	}
	if !isNative(order) {
		if !cfg.autoSwap {
			return nil, fmt.Errorf("%w: record is %s", ErrEndianMismatch, order)
		}
		cfg.logger.Debug("sac: swapping foreign-endian record", "order", order.String())
	}

	var raw rawHeader
	if err := struc.UnpackWithOptions(bytes.NewReader(data[:HeaderSize]), &raw, &struc.Options{Order: order}); err != nil {
		return nil, formatf("unpack header: %v", err)
	}

	t := &Trace{geo: cfg.geo}
	t.hdr = raw.header()

	npts := int(t.hdr.Ints[Npts])
	if npts < 0 {
		return nil, formatf("negative npts %d", npts)
	}
	if !(t.hdr.Floats[Delta] > 0) {
		return nil, formatf("delta must be > 0: %v", t.hdr.Floats[Delta])
	}
	body := data[HeaderSize:]
	if len(body) < 4*npts {
		return nil, formatf("truncated data: %d bytes for %d samples", len(body), npts)
	}

	t.data = make([]float32, npts)
	for i := range t.data {
		t.data[i] = math.Float32frombits(order.Uint32(body[4*i:]))
	}

	if !t.hdr.IsSet(Az) || !t.hdr.IsSet(Baz) || !t.hdr.IsSet(Gcarc) {
		t.RefreshGeometry()
	}
	return t, nil
}

// Encode serializes t. Text fields are space padded to their fixed width
// and truncated if longer.
func Encode(t *Trace, opts ...EncodeOption) []byte {
	cfg := encodeConfig{order: binary.BigEndian}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	raw := newRawHeader(&t.hdr, len(t.data))

	var buf bytes.Buffer
	buf.Grow(HeaderSize + 4*len(t.data))
	if err := struc.PackWithOptions(&buf, &raw, &struc.Options{Order: cfg.order}); err != nil {
		panic("sac: packing fixed-size header: " + err.Error())
	}

	var word [4]byte
	for _, v := range t.data {
		cfg.order.PutUint32(word[:], math.Float32bits(v))
		buf.Write(word[:])
	}
	return buf.Bytes()
}

func newRawHeader(h *Header, npts int) rawHeader {
	raw := rawHeader{
		Floats: h.Floats,
		Ints:   h.Ints,
	}
	raw.Ints[Npts] = int32(npts)
	for i, v := range h.Bools {
		if v {
			raw.Bools[i] = 1
		}
	}

	off := 0
	for i, s := range h.Texts {
		w := TextKey(i).Width()
		field := raw.Text[off : off+w]
		n := copy(field, s)
		for j := n; j < w; j++ {
			field[j] = ' '
		}
		off += w
	}
	return raw
}

func (raw *rawHeader) header() Header {
	h := Header{
		Floats: raw.Floats,
		Ints:   raw.Ints,
	}
	for i, v := range raw.Bools {
		h.Bools[i] = v != 0
	}

	off := 0
	for i := range h.Texts {
		w := TextKey(i).Width()
		h.Texts[i] = string(bytes.TrimRight(raw.Text[off:off+w], " \x00"))
		off += w
	}
	return h
}

// Read decodes a record from r.
func Read(r io.Reader, opts ...Option) (*Trace, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, opts...)
}

// WriteTo writes the big-endian encoding of t to w.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(Encode(t))
	return int64(n), err
}

// ReadFile decodes the record stored at path.
func ReadFile(path string, opts ...Option) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, opts...)
}

// WriteFile encodes t and writes it to path.
func WriteFile(path string, t *Trace, opts ...EncodeOption) error {
	return os.WriteFile(path, Encode(t, opts...), 0o644)
}
