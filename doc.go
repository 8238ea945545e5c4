/*
Package glspv compiles GLSL shader source into SPIR-V binary modules by
delegating to the system shaderc library. The package itself contains no
compiler logic: it reads the source, hands it to libshaderc together with the
requested shader stage and optimization preset, and streams the resulting
binary module to the output.

The package provides a command line interface. To check the supported
commands type:

	$ glspv --help

In case you wish to integrate the API in a self constructed environment here
is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/gfxkit/glspv"
		"github.com/gfxkit/glspv/shaderc"
	)

	func main() {
		p := &glspv.Processor{
			Kind:      shaderc.VertexShader,
			InputName: "shader.vert",
		}

		in, err := os.Open("shader.vert")
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()

		if err := p.Process(in, os.Stdout); err != nil {
			log.Fatalf("Error compiling shader: %s", err)
		}
	}
*/
package glspv
