// Command sacinfo prints header fields of SAC files, optionally after
// running a short processing chain.
//
// Usage:
//
//	sacinfo [flags] file.sac [file.sac ...]
//
// Examples:
//
//	sacinfo trace.sac
//	sacinfo -fields kstnm,kcmpnm,npts,delta trace.sac
//	sacinfo -all trace.sac
//	sacinfo -detrend -taper 0.05 -bp 0.5,2 -passes 2 -out filtered.sac trace.sac
//	sacinfo -lp 2 -poles 4 -response trace.sac
//	sacinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sac/dsp/window"
	"github.com/cwbudde/algo-sac/process"
	"github.com/cwbudde/algo-sac/sac"
)

const defaultFields = "kstnm,kcmpnm,delta,npts,b,e,depmin,depmax,depmen"

var errUsage = errors.New("usage")

type options struct {
	fields   []sac.Field
	all      bool
	list     bool
	demean   bool
	detrend  bool
	taper    float64
	window   window.Type
	filter   *process.FilterRequest
	response bool
	out      string
	files    []string
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 2
	}

	if opts.list {
		printList(stdout)
		return 0
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	proc := process.New(process.WithLogger(logger))

	status := 0
	for _, path := range opts.files {
		tr, err := sac.ReadFile(path, sac.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			status = 1
			continue
		}
		var response []float64
		if opts.response {
			response, err = proc.FilterResponse(tr, *opts.filter, opts.filter.Corners...)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s: %v\n", path, err)
				status = 1
				continue
			}
		}
		if err := apply(proc, tr, opts); err != nil {
			fmt.Fprintf(stderr, "error: %s: %v\n", path, err)
			status = 1
			continue
		}
		if opts.out != "" {
			if err := sac.WriteFile(opts.out, tr); err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				status = 1
				continue
			}
		}
		if err := printHeader(stdout, path, tr, opts, response); err != nil {
			fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
			return 1
		}
	}
	return status
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("sacinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fields := fs.String("fields", defaultFields, "comma-separated header fields to print")
	all := fs.Bool("all", false, "print every set header field")
	list := fs.Bool("list", false, "list header field names and kinds")
	demean := fs.Bool("demean", false, "remove the mean before printing")
	detrend := fs.Bool("detrend", false, "remove the linear trend before printing")
	taper := fs.Float64("taper", 0, "taper width per end as a fraction of the trace (0 disables)")
	win := fs.String("window", "hann", "taper window: hann, hamming or cosine")
	lp := fs.Float64("lp", 0, "lowpass corner in Hz (0 disables)")
	hp := fs.Float64("hp", 0, "highpass corner in Hz (0 disables)")
	bp := fs.String("bp", "", "bandpass corners in Hz as low,high")
	poles := fs.Int("poles", 2, "filter order")
	passes := fs.Int("passes", 1, "filter passes: 1 causal, 2 zero-phase")
	response := fs.Bool("response", false, "print the filter magnitude in dB at each corner")
	out := fs.String("out", "", "write the processed trace to this path (single input only)")
	verbose := fs.Bool("v", false, "log debug messages")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sacinfo [flags] file.sac [file.sac ...]\n\n")
		fmt.Fprintf(stderr, "Prints SAC header fields, optionally after processing.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		all:      *all,
		list:     *list,
		demean:   *demean,
		detrend:  *detrend,
		taper:    *taper,
		response: *response,
		out:      *out,
		files:    fs.Args(),
		verbose:  *verbose,
	}
	if opts.list {
		return opts, nil
	}
	if len(opts.files) == 0 {
		fs.Usage()
		return options{}, errUsage
	}
	if opts.out != "" && len(opts.files) != 1 {
		return options{}, errors.New("-out needs exactly one input file")
	}

	for _, name := range strings.Split(*fields, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, ok := sac.LookupField(name)
		if !ok {
			return options{}, fmt.Errorf("unknown header field %q (use -list)", name)
		}
		opts.fields = append(opts.fields, f)
	}

	kind, err := window.ParseType(strings.ToLower(*win))
	if err != nil {
		return options{}, err
	}
	opts.window = kind

	req, err := filterRequest(*lp, *hp, *bp)
	if err != nil {
		return options{}, err
	}
	if req != nil {
		r := req.WithPoles(*poles).WithPasses(*passes)
		opts.filter = &r
	}
	if opts.response && opts.filter == nil {
		return options{}, errors.New("-response needs one of -lp, -hp or -bp")
	}
	return opts, nil
}

func filterRequest(lp, hp float64, bp string) (*process.FilterRequest, error) {
	var reqs []process.FilterRequest
	if lp > 0 {
		reqs = append(reqs, process.Lowpass(lp))
	}
	if hp > 0 {
		reqs = append(reqs, process.Highpass(hp))
	}
	if bp != "" {
		parts := strings.Split(bp, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("-bp wants low,high, got %q", bp)
		}
		low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("-bp low corner: %w", err)
		}
		high, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("-bp high corner: %w", err)
		}
		reqs = append(reqs, process.Bandpass(low, high))
	}

	switch len(reqs) {
	case 0:
		return nil, nil
	case 1:
		return &reqs[0], nil
	default:
		return nil, errors.New("-lp, -hp and -bp are mutually exclusive")
	}
}

// apply runs the processing chain in a fixed order: trend removal, taper,
// then filter.
func apply(p *process.Processor, tr *sac.Trace, opts options) error {
	if opts.demean {
		if err := p.Demean(tr); err != nil {
			return err
		}
	}
	if opts.detrend {
		if err := p.Detrend(tr); err != nil {
			return err
		}
	}
	if opts.taper > 0 {
		if err := p.Taper(tr, opts.taper, opts.window); err != nil {
			return err
		}
	}
	if opts.filter != nil {
		if err := p.Filter(tr, *opts.filter); err != nil {
			return err
		}
	}
	return nil
}

func isSet(h *sac.Header, f sac.Field) bool {
	switch f.Kind {
	case sac.KindFloat:
		return h.IsSet(f.Float)
	case sac.KindInt:
		return h.Ints[f.Int] != sac.IntUnset
	case sac.KindBool:
		return h.Bools[f.Bool]
	default:
		return h.Texts[f.Text] != sac.TextUnset
	}
}

func printHeader(w io.Writer, path string, tr *sac.Trace, opts options, response []float64) error {
	h := tr.Header()
	fields := opts.fields
	if opts.all {
		fields = nil
		for _, f := range sac.Fields() {
			if isSet(&h, f) {
				fields = append(fields, f)
			}
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n", path); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		if _, err := fmt.Fprintf(tw, "  %s\t%s\n", f.Name, h.Format(f)); err != nil {
			return err
		}
	}
	for i, db := range response {
		if _, err := fmt.Fprintf(tw, "  db@%g\t%.2f\n", opts.filter.Corners[i], db); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printList(w io.Writer) {
	fields := sac.Fields()
	names := make([]string, 0, len(fields))
	kinds := make(map[string]sac.Kind, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f.Name, "unused") || strings.HasPrefix(f.Name, "internal") {
			continue
		}
		names = append(names, f.Name)
		kinds[f.Name] = f.Kind
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t%s\n", n, kinds[n])
	}
	_ = tw.Flush()
}
