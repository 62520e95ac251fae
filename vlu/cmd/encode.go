package cmd

import (
	"io"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/shenwei356/breader"
	"github.com/spf13/cobra"

	"github.com/calebcase/vlu"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Pack plain text integers",
	Long: `Pack plain text integers

Input files hold one unsigned 64-bit integer per line, blank lines are
skipped. All values of all files are packed into one output stream with
the codec given by --codec.

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

		outfh, gw, w, err := outStream(outFile, isGzipName(outFile), opt.CompressionLevel)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w.Close()
		}()

		var total, written int64
		for _, file := range files {
			n, size, err := encodeFile(file, opt.Codec, outfh)
			checkError(err)

			total += n
			written += size
		}

		if opt.Verbose {
			log.Infof("%s values packed with %s into %s", humanize.Comma(total), opt.Codec.Name(), humanize.Bytes(uint64(written)))
		}
	},
}

// encodeFile packs the integers of a text file into w and returns the number
// of values and bytes written. Values are packed one chunk of lines at a
// time.
func encodeFile(file string, c vlu.Codec, w io.Writer) (n int64, size int64, err error) {
	reader, err := breader.NewDefaultBufferedReader(file)
	if err != nil {
		return 0, 0, errors.Wrap(err, file)
	}
	defer drain(reader)

	var values []uint64
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return n, size, errors.Wrap(chunk.Err, file)
		}

		values = values[:0]
		for _, data := range chunk.Data {
			v, ok, err := parseValue(data.(string))
			if err != nil {
				return n, size, errors.Wrap(err, file)
			}
			if !ok {
				continue
			}

			values = append(values, v)
		}

		m, err := w.Write(c.EncodeVec(values))
		size += int64(m)
		if err != nil {
			return n, size, errors.Wrap(err, file)
		}

		n += int64(len(values))
	}

	return n, size, nil
}

func init() {
	RootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringP("out-file", "o", "-", `out file ("-" for stdout, suffix .gz for gzipped out)`)
}
