package glspv

import (
	"io"

	"github.com/gfxkit/glspv/shaderc"
	"github.com/pkg/errors"
)

// ErrNoSource is returned when the input stream yields no shader source.
var ErrNoSource = errors.New("no shader source provided")

// Processor options
type Processor struct {
	Kind      shaderc.ShaderKind
	InputName string
	Optimize  bool
}

// Process is the main entry point which reads the shader source from the
// input stream, compiles it to a SPIR-V binary module and writes the module
// bytes into the output stream.
//
// The source is consumed up to EOF before the compiler is invoked. Nothing is
// written to the output stream on any failure path, so a failed compilation
// never produces a partial binary module.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	source, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "unable to read the shader source")
	}
	if len(source) == 0 {
		return ErrNoSource
	}

	compiler := shaderc.NewCompiler()
	defer compiler.Release()

	opts := shaderc.NewCompileOptions()
	defer opts.Release()

	if p.Optimize {
		opts.SetOptimizationLevel(shaderc.OptimizationLevelPerformance)
	}

	name := p.InputName
	if name == "" {
		name = "shader"
	}

	spirv, err := compiler.CompileGLSLToSPIRV(string(source), name, p.Kind, opts)
	if err != nil {
		return err
	}

	_, err = w.Write(spirv)
	return errors.Wrap(err, "unable to write the compiled module")
}
