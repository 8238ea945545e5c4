// Package shaderc wraps the system libshaderc GLSL to SPIR-V compiler.
//
// The package is a thin cgo binding: it owns the handle lifecycle and the
// string/byte marshalling, nothing more. All lexing, parsing, validation,
// optimization and code generation happen inside the C library.
package shaderc

/*
#cgo pkg-config: shaderc
#include <shaderc/shaderc.h>
#include <stdlib.h>
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Compiler wraps a shaderc_compiler_t handle. A Compiler must be released
// with Release once it is no longer needed.
type Compiler struct {
	handle C.shaderc_compiler_t
}

// NewCompiler initializes a new compiler instance.
func NewCompiler() *Compiler {
	return &Compiler{handle: C.shaderc_compiler_initialize()}
}

// Release frees the underlying compiler handle.
func (c *Compiler) Release() {
	C.shaderc_compiler_release(c.handle)
}

// CompileOptions wraps a shaderc_compile_options_t handle. CompileOptions
// must be released with Release once they are no longer needed.
type CompileOptions struct {
	handle C.shaderc_compile_options_t
}

// NewCompileOptions initializes a new set of compile options with the
// library defaults.
func NewCompileOptions() *CompileOptions {
	return &CompileOptions{handle: C.shaderc_compile_options_initialize()}
}

// Release frees the underlying options handle.
func (o *CompileOptions) Release() {
	C.shaderc_compile_options_release(o.handle)
}

// OptimizationLevel selects a named level of code-transformation
// aggressiveness exposed by the library.
type OptimizationLevel int

const (
	OptimizationLevelZero        OptimizationLevel = C.shaderc_optimization_level_zero
	OptimizationLevelSize        OptimizationLevel = C.shaderc_optimization_level_size
	OptimizationLevelPerformance OptimizationLevel = C.shaderc_optimization_level_performance
)

// SetOptimizationLevel sets the optimization level used during compilation.
func (o *CompileOptions) SetOptimizationLevel(level OptimizationLevel) {
	C.shaderc_compile_options_set_optimization_level(
		o.handle,
		C.shaderc_optimization_level(level),
	)
}

// CompilationStatus mirrors the shaderc_compilation_status codes reported by
// the library.
type CompilationStatus int

const (
	StatusSuccess             CompilationStatus = C.shaderc_compilation_status_success
	StatusInvalidStage        CompilationStatus = C.shaderc_compilation_status_invalid_stage
	StatusCompilationError    CompilationStatus = C.shaderc_compilation_status_compilation_error
	StatusInternalError       CompilationStatus = C.shaderc_compilation_status_internal_error
	StatusNullResultObject    CompilationStatus = C.shaderc_compilation_status_null_result_object
	StatusInvalidAssembly     CompilationStatus = C.shaderc_compilation_status_invalid_assembly
	StatusValidationError     CompilationStatus = C.shaderc_compilation_status_validation_error
	StatusTransformationError CompilationStatus = C.shaderc_compilation_status_transformation_error
	StatusConfigurationError  CompilationStatus = C.shaderc_compilation_status_configuration_error
)

func (s CompilationStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidStage:
		return "invalid stage"
	case StatusCompilationError:
		return "compilation error"
	case StatusInternalError:
		return "internal error"
	case StatusNullResultObject:
		return "null result object"
	case StatusInvalidAssembly:
		return "invalid assembly"
	case StatusValidationError:
		return "validation error"
	case StatusTransformationError:
		return "transformation error"
	case StatusConfigurationError:
		return "configuration error"
	}
	return fmt.Sprintf("status %d", int(s))
}

// CompileError reports a non-success compilation status together with the
// error text produced by the library, verbatim.
type CompileError struct {
	Status  CompilationStatus
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// CompileGLSLToSPIRV compiles GLSL source text into a SPIR-V binary module
// with entry point "main". The inputName is advisory and appears only in the
// library's diagnostics. A nil opts compiles with the library defaults.
//
// On success the returned slice is a Go-owned copy of the module bytes; its
// length is always a multiple of 4 (the module is a sequence of 32-bit words
// in host byte order). On any non-success status the error is a
// *CompileError carrying the numeric status and the library's message.
func (c *Compiler) CompileGLSLToSPIRV(source, inputName string, kind ShaderKind, opts *CompileOptions) ([]byte, error) {
	cSource := C.CString(source)
	cName := C.CString(inputName)
	cEntry := C.CString("main")
	defer C.free(unsafe.Pointer(cSource))
	defer C.free(unsafe.Pointer(cName))
	defer C.free(unsafe.Pointer(cEntry))

	var optsHandle C.shaderc_compile_options_t
	if opts != nil {
		optsHandle = opts.handle
	}

	result := C.shaderc_compile_into_spv(
		c.handle,
		cSource,
		C.size_t(len(source)),
		C.shaderc_shader_kind(kind),
		cName,
		cEntry,
		optsHandle,
	)
	defer C.shaderc_result_release(result)

	status := CompilationStatus(C.shaderc_result_get_compilation_status(result))
	if status != StatusSuccess {
		return nil, &CompileError{
			Status:  status,
			Message: C.GoString(C.shaderc_result_get_error_message(result)),
		}
	}

	ptr := C.shaderc_result_get_bytes(result)
	length := C.shaderc_result_get_length(result)
	return C.GoBytes(unsafe.Pointer(ptr), C.int(length)), nil
}
