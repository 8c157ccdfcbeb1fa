package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"envi-binreader/config"
	"envi-binreader/ds"
	"envi-binreader/envi/efile"
	"envi-binreader/envi/ereader"
	"envi-binreader/ui"
	"github.com/alexflint/go-arg"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	Args struct {
		Config      string          `arg:"--config" help:"YAML configuration file" placeholder:"config.yaml"`
		Probe       *ProbeCmd       `arg:"subcommand:probe" help:"report whether a file is BIL or BSQ"`
		Info        *InfoCmd        `arg:"subcommand:info" help:"show what the header declares"`
		Cell        *CellCmd        `arg:"subcommand:cell" help:"print one value"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the header"`
	}
	ProbeCmd struct {
		File string `arg:"positional,required" help:"binary file" placeholder:"FILE"`
	}
	InfoCmd struct {
		File   string `arg:"positional,required" help:"binary file" placeholder:"FILE"`
		Header string `help:"header file, derived from FILE when omitted" placeholder:"HDR"`
		JSON   bool   `arg:"--json" help:"print metadata as JSON"`
		Dump   bool   `help:"also print every header item"`
	}
	CellCmd struct {
		File   string `arg:"positional,required" help:"binary file" placeholder:"FILE"`
		Band   uint64 `help:"zero-based band"`
		Line   uint64 `help:"zero-based line"`
		Col    uint64 `help:"zero-based sample"`
		Header string `help:"header file, derived from FILE when omitted" placeholder:"HDR"`
	}
	InteractiveCmd struct {
		File   string `arg:"positional,required" help:"binary file" placeholder:"FILE"`
		Header string `help:"header file, derived from FILE when omitted" placeholder:"HDR"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Inspect ENVI band-interleaved-by-line (BIL) and band-sequential (BSQ) rasters.\n",
			"The header paired with FILE is found by swapping its extension for .hdr,",
			"or by appending .hdr, unless --header is given.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func withHeader(opts []efile.Option, header string) []efile.Option {
	if header == "" {
		return opts
	}
	return append(append([]efile.Option(nil), opts...), efile.WithHeaderPath(header))
}

func StartProbing(w io.Writer, path string, opts []efile.Option) error {
	file, err := efile.Open(path, opts...)
	if err != nil {
		return errors.Wrap(err, "cli.StartProbing error")
	}
	defer file.Close()
	fmt.Fprintln(w, file.Style())
	return nil
}

func StartInfo(w io.Writer, cmd InfoCmd, opts []efile.Option) error {
	file, err := efile.OpenWithHeader(cmd.File, withHeader(opts, cmd.Header)...)
	if err != nil {
		return errors.Wrap(err, "cli.StartInfo error")
	}
	defer file.Close()

	metadata := file.Metadata()
	if cmd.JSON {
		fmt.Fprintln(w, ds.DumpIndentedJSON(metadata))
	} else {
		fmt.Fprintf(w, "file:        %s\n", metadata.FileName)
		fmt.Fprintf(w, "header:      %s\n", metadata.HeaderFileName)
		fmt.Fprintf(w, "style:       %s\n", metadata.Style)
		fmt.Fprintf(w, "lines:       %d\n", metadata.Lines)
		fmt.Fprintf(w, "samples:     %d\n", metadata.Samples)
		fmt.Fprintf(w, "bands:       %d\n", metadata.Bands)
		fmt.Fprintf(w, "data type:   %d (%s, %d bytes)\n", metadata.DataType, metadata.DataTypeName, metadata.DataSize)
		fmt.Fprintf(w, "byte order:  %s\n", metadata.ByteOrder)
		fmt.Fprintf(w, "file size:   %d\n", metadata.FileSize)
	}
	warnings := lo.Map(
		file.Diagnostics(),
		func(err error, _ int) string {
			return "warning: " + err.Error()
		},
	)
	for _, warning := range warnings {
		fmt.Fprintln(w, warning)
	}
	if cmd.Dump {
		fmt.Fprint(w, file.Header().Dump())
	}
	return nil
}

func StartCell(w io.Writer, cmd CellCmd, opts []efile.Option) error {
	variant, err := ereader.Open(cmd.File, withHeader(opts, cmd.Header)...)
	if err != nil {
		return errors.Wrap(err, "cli.StartCell error")
	}
	defer variant.Close()

	value, err := ereader.AsReader(variant).ReadCell(cmd.Band, cmd.Line, cmd.Col)
	if err != nil {
		return errors.Wrap(err, "cli.StartCell error")
	}
	fmt.Fprintln(w, value)
	return nil
}

func StartInteractive(cmd InteractiveCmd, opts []efile.Option) error {
	file, err := efile.OpenWithHeader(cmd.File, withHeader(opts, cmd.Header)...)
	if err != nil {
		return errors.Wrap(err, "cli.StartInteractive error")
	}
	defer file.Close()
	return ui.Start(file)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	cfg, err := config.Load(args.Config)
	if err != nil {
		parser.Fail(err.Error())
	}
	logger := cfg.Logger()
	opts := cfg.Options(logger)

	switch {
	case args.Probe != nil:
		err = StartProbing(os.Stdout, args.Probe.File, opts)
	case args.Info != nil:
		err = StartInfo(os.Stdout, *args.Info, opts)
	case args.Cell != nil:
		err = StartCell(os.Stdout, *args.Cell, opts)
	case args.Interactive != nil:
		err = StartInteractive(*args.Interactive, opts)
	default:
		parser.WriteHelp(os.Stdout)
		return
	}
	if err != nil {
		level.Error(logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
