// Package cli provides the command-line interface of mkprop.
package cli

import (
	stderrors "errors"
	"strings"

	"mkprop/internal/classfile"
	"mkprop/internal/errors"
	"mkprop/internal/output"
)

// Version is set at build time.
var Version = "dev"

var out = output.New()

// Options are the flags shared by build and sketch.
type Options struct {
	ClassVersion classfile.Version
	Report       string
	Quiet        bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return errors.ExitSuccess
	}

	cmd, cmdArgs := args[0], args[1:]

	var err error

	switch cmd {
	case "-h", "--help", "help":
		printUsage()
		return errors.ExitSuccess
	case "--version", "version":
		out.Println("mkprop %s (class version %s)", Version, classfile.DefaultVersion)
		return errors.ExitSuccess
	case "build":
		err = cmdBuild(cmdArgs)
	case "sketch":
		err = cmdSketch(cmdArgs)
	case "run":
		err = cmdRun(cmdArgs)
	case "inspect":
		err = cmdInspect(cmdArgs)
	default:
		err = errors.Usagef("unknown command %q (run 'mkprop help' for usage)", cmd)
	}

	if err != nil {
		code := errors.GetExitCode(err)

		// The job name goes in front of "error:", not inside the message.
		job := ""

		var me *errors.MkpropError
		if stderrors.As(err, &me) && me.Job != "" {
			job = me.Job
			bare := *me
			bare.Job = ""
			err = &bare
		}

		out.Failure(job, err)

		return code
	}

	return errors.ExitSuccess
}

// parseFlags separates flags from positional arguments. Flags may appear
// anywhere; everything after "--" is positional.
func parseFlags(args []string) (*Options, []string, error) {
	opts := &Options{ClassVersion: classfile.DefaultVersion}

	var positional []string

	value := func(i int, name string) (string, error) {
		if i+1 >= len(args) {
			return "", errors.Usagef("%s requires a value", name)
		}

		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
		case arg == "--class-version" || strings.HasPrefix(arg, "--class-version="):
			v, ok := strings.CutPrefix(arg, "--class-version=")
			if !ok {
				var err error
				if v, err = value(i, arg); err != nil {
					return nil, nil, err
				}

				i++
			}

			parsed, err := classfile.ParseVersion(v)
			if err != nil {
				return nil, nil, errors.Usage(err.Error())
			}

			opts.ClassVersion = parsed
		case arg == "--report" || strings.HasPrefix(arg, "--report="):
			v, ok := strings.CutPrefix(arg, "--report=")
			if !ok {
				var err error
				if v, err = value(i, arg); err != nil {
					return nil, nil, err
				}

				i++
			}

			if v == "" {
				return nil, nil, errors.Usage("--report requires a file name")
			}

			opts.Report = v
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, nil, errors.Usagef("unknown flag %q", arg)
		default:
			positional = append(positional, arg)
		}
	}

	return opts, positional, nil
}

func printUsage() {
	out.Print(`mkprop - compile robot property templates into JVM class files

Usage:
  mkprop build TEMPLATE DRIVER_DATA OUT_FILE [flags]
  mkprop sketch TEMPLATE OUT_FILE [flags]
  mkprop run [CONFIG]          run the jobs of a project file (default %s)
  mkprop inspect CLASS_FILE    print a class file as YAML
  mkprop version
  mkprop help

Flags (build, sketch):
  --class-version M.m   class-file version (default %s)
  --report FILE         write a YAML report of the resolved fields
  -q, --quiet           print warnings and errors only

Exit codes:
  0 success, 1 runtime error, 2 usage or project error, 3 invalid input
`, defaultProjectFile, classfile.DefaultVersion)
}

// usageError builds a usage error naming the expected arguments.
func usageError(cmd, synopsis string) error {
	return errors.Usagef("usage: mkprop %s %s", cmd, synopsis)
}
