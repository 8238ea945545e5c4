package shaderc

/*
#include <shaderc/shaderc.h>
*/
import "C"

// ShaderKind identifies the pipeline stage a shader program targets.
type ShaderKind int

const (
	VertexShader         ShaderKind = C.shaderc_vertex_shader
	FragmentShader       ShaderKind = C.shaderc_fragment_shader
	ComputeShader        ShaderKind = C.shaderc_compute_shader
	GeometryShader       ShaderKind = C.shaderc_geometry_shader
	TessControlShader    ShaderKind = C.shaderc_tess_control_shader
	TessEvaluationShader ShaderKind = C.shaderc_tess_evaluation_shader

	// InferFromSource lets the library deduce the stage from
	// #pragma shader_stage(...) annotations in the source text.
	InferFromSource ShaderKind = C.shaderc_glsl_infer_from_source
)

// KindFromString maps a stage token to its ShaderKind. Unrecognized tokens,
// the empty string included, fall back to InferFromSource.
func KindFromString(kind string) ShaderKind {
	switch kind {
	case "vertex":
		return VertexShader
	case "fragment":
		return FragmentShader
	case "compute":
		return ComputeShader
	case "geometry":
		return GeometryShader
	case "tess_control":
		return TessControlShader
	case "tess_evaluation":
		return TessEvaluationShader
	}
	return InferFromSource
}
