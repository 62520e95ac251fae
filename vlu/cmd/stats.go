package cmd

import (
	"fmt"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/calebcase/vlu"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Statistics of packed files",
	Long: `Statistics of packed files

Every file is unpacked with --codec and the values are sized under each
available codec, compared with plain 8-byte storage. Output is tab
separated, one row per file and codec.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		files := getFileListFromArgsAndFile(cmd, args, true, "infile-list")

		outFile := getFlagString(cmd, "out-file")
		raw := getFlagBool(cmd, "raw")

		outfh, gw, w, err := outStream(outFile, isGzipName(outFile), opt.CompressionLevel)
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w.Close()
		}()

		var infos []statInfo
		for _, file := range files {
			fileInfos, err := statFile(file, opt.Codec)
			checkError(err)

			if opt.Verbose && len(fileInfos) > 0 {
				log.Infof("%s values read from %s", humanize.Comma(fileInfos[0].number), file)
			}

			infos = append(infos, fileInfos...)
		}

		outfh.WriteString("file\tcodec\tnumber\tbytes\tbytes_per_value\tratio\n")
		for _, info := range infos {
			if raw {
				outfh.WriteString(fmt.Sprintf("%s\t%s\t%d\t%d\t%.3f\t%.3f\n",
					info.file, info.codec, info.number, info.bytes, info.perValue(), info.ratio()))
				continue
			}

			outfh.WriteString(fmt.Sprintf("%s\t%s\t%s\t%s\t%.3f\t%.1f%%\n",
				info.file, info.codec, humanize.Comma(info.number), humanize.Bytes(uint64(info.bytes)),
				info.perValue(), info.ratio()*100))
		}
	},
}

// statFile unpacks file with c and sizes the values under every codec. A
// truncated file is counted with its flagged values and logged as a warning.
func statFile(file string, c vlu.Codec) ([]statInfo, error) {
	values, err := decodeFile(file, c)
	if err != nil {
		if !vlu.IsTruncated(err) {
			return nil, err
		}
		log.Warningf("%s: %s", file, err)
	}

	infos := make([]statInfo, 0, len(vlu.Names()))
	for _, name := range vlu.Names() {
		other, err := vlu.Lookup(name)
		if err != nil {
			return nil, err
		}

		infos = append(infos, newStatInfo(file, other, values))
	}

	return infos, nil
}

type statInfo struct {
	file   string
	codec  string
	number int64
	bytes  int64
}

func newStatInfo(file string, c vlu.Codec, values []uint64) statInfo {
	info := statInfo{
		file:   file,
		codec:  c.Name(),
		number: int64(len(values)),
	}

	for _, v := range values {
		info.bytes += int64(c.EncodedSize(v))
	}

	return info
}

func (info statInfo) perValue() float64 {
	if info.number == 0 {
		return 0
	}
	return float64(info.bytes) / float64(info.number)
}

// ratio of the packed size to 8 bytes per value.
func (info statInfo) ratio() float64 {
	if info.number == 0 {
		return 0
	}
	return float64(info.bytes) / float64(8*info.number)
}

func init() {
	RootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("out-file", "o", "-", `out file ("-" for stdout, suffix .gz for gzipped out)`)
	statsCmd.Flags().BoolP("raw", "r", false, "print plain numbers instead of human-readable ones")
}
