package cmd

import (
	"bufio"
	"compress/flate"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
	colorable "github.com/mattn/go-colorable"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/shenwei356/breader"
	logging "github.com/shenwei356/go-logging"
	"github.com/shenwei356/util/pathutil"
	"github.com/shenwei356/xopen"
	"github.com/spf13/cobra"

	"github.com/calebcase/vlu"
)

var log *logging.Logger

func init() {
	logFormat := logging.MustStringFormatter(`%{color}[%{level:.4s}]%{color:reset} %{message}`)
	backend := logging.NewLogBackend(colorable.NewColorableStderr(), "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logFormat)
	logging.SetBackend(backendFormatter)

	log = logging.MustGetLogger("vlu")
}

// Options contains the global flags
type Options struct {
	Verbose          bool
	Codec            vlu.Codec
	CompressionLevel int
}

func getOptions(cmd *cobra.Command) *Options {
	level := getFlagInt(cmd, "compression-level")
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		checkError(fmt.Errorf("gzip: invalid compression level: %d", level))
	}

	codec, err := vlu.Lookup(getFlagString(cmd, "codec"))
	checkError(err)

	return &Options{
		Verbose:          getFlagBool(cmd, "verbose"),
		Codec:            codec,
		CompressionLevel: level,
	}
}

func checkError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(-1)
	}
}

func getFlagString(cmd *cobra.Command, flag string) string {
	value, err := cmd.Flags().GetString(flag)
	checkError(err)
	return value
}

func getFlagBool(cmd *cobra.Command, flag string) bool {
	value, err := cmd.Flags().GetBool(flag)
	checkError(err)
	return value
}

func getFlagInt(cmd *cobra.Command, flag string) int {
	value, err := cmd.Flags().GetInt(flag)
	checkError(err)
	return value
}

func isStdin(file string) bool {
	return file == "-"
}

func isStdout(file string) bool {
	return file == "-"
}

// getFileList returns the files named in args, or stdin when there are none.
// Paths starting with ~ are expanded.
func getFileList(args []string, checkFile bool) ([]string, error) {
	if len(args) == 0 {
		return []string{"-"}, nil
	}

	files := make([]string, 0, len(args))
	for _, file := range args {
		if isStdin(file) {
			files = append(files, file)
			continue
		}

		path, err := homedir.Expand(file)
		if err != nil {
			return nil, errors.Wrap(err, file)
		}

		if checkFile {
			ok, err := pathutil.Exists(path)
			if err != nil {
				return nil, errors.Wrapf(err, "fail to read file %s", path)
			}
			if !ok {
				return nil, fmt.Errorf("file (linked file) does not exist: %s", path)
			}
		}

		files = append(files, path)
	}

	return files, nil
}

// getListFromFile reads one file name per line, skipping blank lines.
func getListFromFile(file string, checkFile bool) ([]string, error) {
	reader, err := breader.NewDefaultBufferedReader(file)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	defer drain(reader)

	var lines []string
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, errors.Wrap(chunk.Err, file)
		}

		for _, data := range chunk.Data {
			line := strings.TrimSpace(data.(string))
			if line == "" {
				continue
			}

			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("no files found in list: %s", file)
	}

	return getFileList(lines, checkFile)
}

// drain discards the chunks left in reader so its goroutines can finish after
// an early return.
func drain(reader *breader.BufferedReader) {
	for range reader.Ch {
	}
}

func getFileListFromArgsAndFile(cmd *cobra.Command, args []string, checkFile bool, flag string) []string {
	infileList := getFlagString(cmd, flag)
	if infileList != "" {
		files, err := getListFromFile(infileList, checkFile)
		checkError(err)
		return files
	}

	files, err := getFileList(args, checkFile)
	checkError(err)
	return files
}

// inStream opens file for reading. Compressed input is detected from its
// content and "-" reads stdin.
func inStream(file string) (*xopen.Reader, error) {
	r, err := xopen.Ropen(file)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}

	return r, nil
}

// outStream opens file for buffered writing, through a parallel gzip writer
// when gzipped is set. "-" writes to stdout. The caller flushes the buffer,
// then closes the gzip writer (if any) and finally the file.
func outStream(file string, gzipped bool, level int) (*bufio.Writer, io.WriteCloser, *os.File, error) {
	var w *os.File
	if isStdout(file) {
		w = os.Stdout
	} else {
		path, err := homedir.Expand(file)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, file)
		}

		dir := filepath.Dir(path)
		ok, err := pathutil.DirExists(dir)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, dir)
		}
		if !ok {
			if err = os.MkdirAll(dir, 0777); err != nil {
				return nil, nil, nil, errors.Wrap(err, dir)
			}
		}

		w, err = os.Create(path)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "fail to write %s", file)
		}
	}

	if gzipped {
		gw, err := pgzip.NewWriterLevel(w, level)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "fail to write %s", file)
		}
		return bufio.NewWriterSize(gw, os.Getpagesize()), gw, w, nil
	}

	return bufio.NewWriterSize(w, os.Getpagesize()), nil, w, nil
}

func isGzipName(file string) bool {
	return strings.HasSuffix(strings.ToLower(file), ".gz")
}

// parseValue parses one line of an integer text file. Blank lines report
// ok == false.
func parseValue(line string) (v uint64, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false, nil
	}

	v, err = strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("value should be a non-negative 64-bit integer: %s", line)
	}

	return v, true, nil
}
