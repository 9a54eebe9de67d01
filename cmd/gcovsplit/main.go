// The gcovsplit CLI tool unpacks a coverage container dumped from a target
// into the individual .gcda files gcov reads.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/gcovblob/compress"
	"github.com/arloliu/gcovblob/container"
	"github.com/arloliu/gcovblob/format"
	"github.com/arloliu/gcovblob/gcda"
)

var versionGitCommit string
var versionBuildTime string

var compressionNames = []string{"none", "zstd", "s2", "lz4"}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "log-level", Value: "info", Usage: "Set log level (panic, fatal, error, warn, info, debug, trace)", EnvVars: []string{"LOG_LEVEL"}},
		&cli.StringFlag{Name: "compression", Value: "none", Usage: "Compression of the container file (none, zstd, s2, lz4)", EnvVars: []string{"COMPRESSION"}},
	}
}

func setupLogLevel(c *cli.Context) error {
	logLevel, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	logrus.SetLevel(logLevel)

	return nil
}

func parseCompression(name string) (format.CompressionType, error) {
	ct, ok := format.ParseCompressionType(name)
	if !ok {
		return 0, fmt.Errorf("--compression should be one of %v", compressionNames)
	}

	return ct, nil
}

// readContainer loads a container dump, undoing the compression a
// sink.Compressed applied to it.
func readContainer(path string, compression format.CompressionType) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read container")
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	data, err = codec.Decompress(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decompress container with %s", compression)
	}

	return data, nil
}

func containerFromArgs(c *cli.Context) ([]byte, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("exactly one container file is required")
	}

	compression, err := parseCompression(c.String("compression"))
	if err != nil {
		return nil, err
	}

	path := c.Args().First()
	data, err := readContainer(path, compression)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("read %d bytes from %s", len(data), path)

	return data, nil
}

func listEntries(w io.Writer, data []byte) error {
	entries, err := container.Parse(data)
	if err != nil {
		return errors.Wrap(err, "parse container")
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%016x %8d %s\n", e.Digest, len(e.Payload), e.Name)
	}

	return nil
}

func dumpEntries(w io.Writer, data []byte) error {
	for e, err := range container.All(data) {
		if err != nil {
			return errors.Wrap(err, "parse container")
		}

		d, err := gcda.Decode(e.Payload)
		if err != nil {
			return errors.Wrapf(err, "decode %s", e.Name)
		}

		f := d.File(e.Name)
		fmt.Fprintf(w, "%s: version %#x stamp %#x checksum %#x, %d functions, %d counters\n",
			e.Name, f.Version, f.Stamp, f.Checksum, len(f.Functions), f.NumValues())
		for _, fn := range d.Functions {
			fmt.Fprintf(w, "  function %d lineno %#x cfg %#x\n",
				fn.Ident, fn.LinenoChecksum, fn.CfgChecksum)
			for _, ctr := range fn.Counters {
				fmt.Fprintf(w, "    %s: %s\n", ctr.Kind, formatValues(ctr.Values))
			}
		}
	}

	return nil
}

func formatValues(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	version := fmt.Sprintf("%s.%s", versionGitCommit, versionBuildTime)

	app := &cli.App{
		Name:      "gcovsplit",
		Usage:     "Unpack gcov coverage containers",
		Version:   version,
		ArgsUsage: "<container>",
	}

	app.Commands = []*cli.Command{
		{
			Name:      "split",
			Usage:     "Write every record of a container to its .gcda file",
			ArgsUsage: "<container>",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "output-dir", Value: "", Usage: "Directory the .gcda files are written under, empty for their recorded paths", EnvVars: []string{"OUTPUT_DIR"}},
			}, commonFlags()...),
			Action: func(c *cli.Context) error {
				if err := setupLogLevel(c); err != nil {
					return err
				}

				data, err := containerFromArgs(c)
				if err != nil {
					return err
				}

				paths, err := container.Split(data, c.String("output-dir"))
				for _, path := range paths {
					logrus.Infof("wrote %s", path)
				}
				if err != nil {
					return errors.Wrap(err, "split container")
				}
				logrus.Infof("split %d records", len(paths))

				return nil
			},
		},
		{
			Name:      "list",
			Usage:     "List the records of a container",
			ArgsUsage: "<container>",
			Flags:     commonFlags(),
			Action: func(c *cli.Context) error {
				if err := setupLogLevel(c); err != nil {
					return err
				}

				data, err := containerFromArgs(c)
				if err != nil {
					return err
				}

				return listEntries(c.App.Writer, data)
			},
		},
		{
			Name:      "dump",
			Usage:     "Print the decoded counters of every record",
			ArgsUsage: "<container>",
			Flags:     commonFlags(),
			Action: func(c *cli.Context) error {
				if err := setupLogLevel(c); err != nil {
					return err
				}

				data, err := containerFromArgs(c)
				if err != nil {
					return err
				}

				return dumpEntries(c.App.Writer, data)
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
