package cli

import (
	"os"

	"mkprop/internal/classfile"
	"mkprop/internal/compile"
	"mkprop/internal/config"
	"mkprop/internal/errors"
	"mkprop/internal/gen"
	"mkprop/internal/report"
)

const defaultProjectFile = config.DefaultFile

// job is one compilation, from the command line or a project file.
type job struct {
	name       string
	mode       string
	template   string
	driverData string
	output     string
	report     string
	version    classfile.Version
}

func cmdBuild(args []string) error {
	opts, pos, err := parseFlags(args)
	if err != nil {
		return err
	}

	if len(pos) != 3 {
		return usageError("build", "TEMPLATE DRIVER_DATA OUT_FILE [--class-version M.m] [--report FILE] [--quiet]")
	}

	out.SetQuiet(opts.Quiet)

	return execute(job{
		mode:       config.ModeBuild,
		template:   pos[0],
		driverData: pos[1],
		output:     pos[2],
		report:     opts.Report,
		version:    opts.ClassVersion,
	})
}

func cmdSketch(args []string) error {
	opts, pos, err := parseFlags(args)
	if err != nil {
		return err
	}

	if len(pos) != 2 {
		return usageError("sketch", "TEMPLATE OUT_FILE [--class-version M.m] [--report FILE] [--quiet]")
	}

	out.SetQuiet(opts.Quiet)

	return execute(job{
		mode:     config.ModeSketch,
		template: pos[0],
		output:   pos[1],
		report:   opts.Report,
		version:  opts.ClassVersion,
	})
}

func cmdRun(args []string) error {
	opts, pos, err := parseFlags(args)
	if err != nil {
		return err
	}

	if len(pos) > 1 {
		return usageError("run", "[CONFIG] [--quiet]")
	}

	out.SetQuiet(opts.Quiet)

	path := defaultProjectFile
	if len(pos) == 1 {
		path = pos[0]
	}

	p, err := config.LoadFile(path)
	if err != nil {
		return errors.Config(err)
	}

	for _, j := range p.Jobs {
		err := execute(job{
			name:       j.Name,
			mode:       j.Mode,
			template:   p.Path(j.Template),
			driverData: p.Path(j.DriverData),
			output:     p.Path(j.Output),
			report:     p.Path(j.Report),
			version:    j.Version,
		})
		if err != nil {
			return err
		}
	}

	out.Success("%d job(s) done", len(p.Jobs))

	return nil
}

func cmdInspect(args []string) error {
	_, pos, err := parseFlags(args)
	if err != nil {
		return err
	}

	if len(pos) != 1 {
		return usageError("inspect", "CLASS_FILE")
	}

	data, err := os.ReadFile(pos[0])
	if err != nil {
		return errors.Wrap(err, "read class file")
	}

	info, err := classfile.Decode(data)
	if err != nil {
		return errors.Wrap(err, pos[0])
	}

	doc, err := report.ClassYAML(info)
	if err != nil {
		return errors.Wrap(err, "render class")
	}

	out.Print("%s", doc)

	return nil
}

// execute compiles one job and writes its artifacts. Warnings are printed
// before anything is written.
func execute(j job) error {
	fail := func(err error, msg string) error {
		return errors.Wrap(err, msg).WithJob(j.name)
	}

	template, err := os.ReadFile(j.template)
	if err != nil {
		return fail(err, "read template")
	}

	opts := compile.Options{Version: j.version}

	var res *compile.Result

	if j.mode == config.ModeSketch {
		res, err = compile.Sketch(string(template), opts)
	} else {
		driverData, rerr := os.ReadFile(j.driverData)
		if rerr != nil {
			return fail(rerr, "read driver data")
		}

		res, err = compile.Build(string(template), string(driverData), opts)
	}

	if err != nil {
		return fail(err, "compile")
	}

	out.Warnings(res.Diagnostics)

	files := []gen.GeneratedFile{{Path: j.output, Content: res.Class}}

	if j.report != "" {
		doc, err := report.ResultYAML(res)
		if err != nil {
			return fail(err, "render report")
		}

		files = append(files, gen.GeneratedFile{Path: j.report, Content: doc})
	}

	if err := gen.WriteFiles(files); err != nil {
		return fail(err, "write")
	}

	if !out.Quiet() {
		out.Print("%s", report.Summary(res))
	}

	out.Info("wrote %s", j.output)

	return nil
}
