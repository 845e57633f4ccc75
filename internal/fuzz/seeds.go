package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var languageSeeds = []string{
	"",
	"// just a comment\n",
	"enable f16;\n",
	"var<storage, read_write> data : array<f32>;\n",
	"const PI = 3.14159;\n",
	"override scale : f32 = 1.0;\n",
	"type Vec = vec4<f32>;\n",
	"struct Light {\n    @location(0) pos : vec3<f32>,\n    color : vec4<f32>,\n}\n",
	"@vertex\nfn main(@builtin(vertex_index) i : u32) -> @builtin(position) vec4<f32> {\n    return vec4<f32>(0.0);\n}\n",
	"fn f() {\n    for (var i = 0; i < 10; i++) {\n        if (i == 5) { break; }\n    }\n}\n",
	"fn g() {\n    loop {\n        continuing { x = x + 1; }\n    }\n}\n",
	"fn h() {\n    switch x {\n        case 1, 2: {}\n        default: { fallthrough; }\n    }\n}\n",
	"fn templates() { let a = array<vec4<f32>>(); }\n",
	"fn casts() { let b = bitcast<u32>(1.0); }\n",
	"import { lighting as l } from \"lib/light.wgsl\";\n",
	"use \"lib/light.wgsl\"::{ lighting };\n",
	// Broken inputs keep the recovery paths honest.
	"var x i32;\n",
	"fn broken( {\n",
	"let a = 1 + ;\n",
	"/* unterminated",
	"\"unterminated string",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
}
