package shaderc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFromString(t *testing.T) {
	tests := []struct {
		token string
		kind  ShaderKind
	}{
		{"vertex", VertexShader},
		{"fragment", FragmentShader},
		{"compute", ComputeShader},
		{"geometry", GeometryShader},
		{"tess_control", TessControlShader},
		{"tess_evaluation", TessEvaluationShader},
		// Unrecognized tokens fall back to stage inference.
		{"", InferFromSource},
		{"Vertex", InferFromSource},
		{"pixel", InferFromSource},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, KindFromString(tt.token), "token %q", tt.token)
	}
}
