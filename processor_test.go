package glspv

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/gfxkit/glspv/shaderc"
	"github.com/stretchr/testify/assert"
)

const vertexSource = `#version 450
void main() {
	gl_Position = vec4(0.0, 0.0, 0.0, 1.0);
}
`

const fragmentSource = `#version 450
layout(location = 0) out vec4 outColor;
void main() {
	outColor = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = uint32(0x07230203)

func TestProcess_EmptySource(t *testing.T) {
	var out bytes.Buffer
	p := &Processor{Kind: shaderc.InferFromSource}

	err := p.Process(strings.NewReader(""), &out)
	assert.ErrorIs(t, err, ErrNoSource)
	assert.Zero(t, out.Len())
}

func TestProcess_ValidVertexShader(t *testing.T) {
	var out bytes.Buffer
	p := &Processor{Kind: shaderc.VertexShader, InputName: "shader.vert"}

	err := p.Process(strings.NewReader(vertexSource), &out)
	assert.NoError(t, err)
	assert.NotZero(t, out.Len())
	assert.Zero(t, out.Len()%4)
	assert.Equal(t, spirvMagic, binary.LittleEndian.Uint32(out.Bytes()[:4]))
}

func TestProcess_InvalidSource(t *testing.T) {
	var out bytes.Buffer
	p := &Processor{Kind: shaderc.FragmentShader, InputName: "shader.frag"}

	err := p.Process(strings.NewReader("this is not glsl"), &out)

	var cerr *shaderc.CompileError
	assert.ErrorAs(t, err, &cerr)
	assert.NotEqual(t, shaderc.StatusSuccess, cerr.Status)
	assert.NotEmpty(t, cerr.Message)
	assert.Zero(t, out.Len(), "a failed compilation must not produce output")
}

func TestProcess_OptimizedAndUnoptimized(t *testing.T) {
	var plain, optimized bytes.Buffer

	p := &Processor{Kind: shaderc.FragmentShader, InputName: "shader.frag"}
	assert.NoError(t, p.Process(strings.NewReader(fragmentSource), &plain))

	p.Optimize = true
	assert.NoError(t, p.Process(strings.NewReader(fragmentSource), &optimized))

	// Optimization may alter the emitted module, but both must be
	// well-formed word-aligned binary streams.
	assert.NotZero(t, plain.Len())
	assert.NotZero(t, optimized.Len())
	assert.Zero(t, plain.Len()%4)
	assert.Zero(t, optimized.Len()%4)
}

func TestProcess_InferStageFromPragma(t *testing.T) {
	source := "#version 450\n#pragma shader_stage(vertex)\nvoid main() {\n\tgl_Position = vec4(0.0);\n}\n"

	var out bytes.Buffer
	p := &Processor{Kind: shaderc.InferFromSource}

	err := p.Process(strings.NewReader(source), &out)
	assert.NoError(t, err)
	assert.Zero(t, out.Len()%4)
}

func TestProcess_InferStageWithoutPragma(t *testing.T) {
	var out bytes.Buffer
	p := &Processor{Kind: shaderc.InferFromSource}

	// The stage cannot be deduced, the library must report a failure.
	err := p.Process(strings.NewReader(vertexSource), &out)

	var cerr *shaderc.CompileError
	assert.ErrorAs(t, err, &cerr)
	assert.Zero(t, out.Len())
}

func TestProcess_DefaultInputName(t *testing.T) {
	var out bytes.Buffer
	p := &Processor{Kind: shaderc.VertexShader}

	err := p.Process(strings.NewReader(vertexSource), &out)
	assert.NoError(t, err)
}
