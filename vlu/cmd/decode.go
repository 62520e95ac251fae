package cmd

import (
	"fmt"
	"io"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/calebcase/vlu"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Unpack integers to plain text",
	Long: `Unpack integers to plain text

Packed files are read whole (gzipped input is detected) and every value is
printed on its own line. When a file ends inside a value the zero padded
value is still printed and a warning names the file.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		if opt.Verbose {
			log.Info("checking input files ...")
		}
		files := getFileListFromArgsAndFile(cmd, args, true, "infile-list")
		if opt.Verbose {
			if len(files) == 1 && isStdin(files[0]) {
				log.Info("no files given, reading from stdin")
			} else {
				log.Infof("%d input file(s) given", len(files))
			}
		}

		outFile := getFlagString(cmd, "out-file")
		strict := getFlagBool(cmd, "strict")

		outfh, gw, w, err := outStream(outFile, isGzipName(outFile), opt.CompressionLevel)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w.Close()
		}()

		for _, file := range files {
			n, err := writeValues(outfh, file, opt.Codec, strict)
			if err != nil {
				outfh.Flush()
				checkError(err)
			}

			if opt.Verbose {
				log.Infof("%s values unpacked from %s", humanize.Comma(int64(n)), file)
			}
		}
	},
}

// writeValues prints the values of a packed file to w, one per line, and
// returns how many were printed. A truncated file still prints every value;
// the truncation is logged as a warning, or returned when strict is set.
func writeValues(w io.Writer, file string, c vlu.Codec, strict bool) (n int, err error) {
	values, err := decodeFile(file, c)
	if err != nil && !vlu.IsTruncated(err) {
		return 0, err
	}

	for _, v := range values {
		if _, werr := fmt.Fprintf(w, "%d\n", v); werr != nil {
			return n, errors.Wrap(werr, file)
		}
		n++
	}

	if err != nil {
		if strict {
			return n, err
		}
		log.Warningf("%s: %s", file, err)
	}

	return n, nil
}

// decodeFile reads a packed file and unpacks it. A truncated file returns the
// values together with the error.
func decodeFile(file string, c vlu.Codec) ([]uint64, error) {
	r, err := inStream(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}

	values, err := c.DecodeVec(data)
	if err != nil {
		return values, errors.Wrap(err, file)
	}

	return values, nil
}

func init() {
	RootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringP("out-file", "o", "-", `out file ("-" for stdout, suffix .gz for gzipped out)`)
	decodeCmd.Flags().BoolP("strict", "s", false, "exit with an error when a file ends inside a value")
}
