package token

// Specialization tables. Closed sets, case-sensitive, exact spelling match;
// classification never depends on surrounding context.

var keywords = map[string]Kind{
	"import":      KwImport,
	"use":         KwUse,
	"from":        KwFrom,
	"as":          KwAs,
	"const":       KwConst,
	"override":    KwOverride,
	"type":        KwType,
	"struct":      KwStruct,
	"fn":          KwFn,
	"var":         KwVar,
	"let":         KwLet,
	"if":          KwIf,
	"else":        KwElse,
	"switch":      KwSwitch,
	"case":        KwCase,
	"default":     KwDefault,
	"fallthrough": KwFallthrough,
	"loop":        KwLoop,
	"continuing":  KwContinuing,
	"for":         KwFor,
	"return":      KwReturn,
	"break":       KwBreak,
	"continue":    KwContinue,
	"discard":     KwDiscard,
	"bitcast":     KwBitcast,

	// address spaces
	"function":  KwAddressSpace,
	"private":   KwAddressSpace,
	"workgroup": KwAddressSpace,
	"uniform":   KwAddressSpace,
	"storage":   KwAddressSpace,

	// access modes
	"read":       KwAccessMode,
	"write":      KwAccessMode,
	"read_write": KwAccessMode,

	// texture-kind words
	"texture_external":              KwTexture,
	"texture_multisampled_2d":       KwTexture,
	"texture_depth_2d":              KwTexture,
	"texture_depth_2d_array":        KwTexture,
	"texture_depth_cube":            KwTexture,
	"texture_depth_cube_array":      KwTexture,
	"texture_depth_multisampled_2d": KwTexture,
}

var typeNames = map[string]struct{}{
	"bool": {}, "f32": {}, "i32": {}, "u32": {},

	"vec2": {}, "vec3": {}, "vec4": {},
	"vec2i": {}, "vec3i": {}, "vec4i": {},
	"vec2u": {}, "vec3u": {}, "vec4u": {},
	"vec2f": {}, "vec3f": {}, "vec4f": {},
	"vec2h": {}, "vec3h": {}, "vec4h": {},

	"mat2x2": {}, "mat2x3": {}, "mat2x4": {},
	"mat3x2": {}, "mat3x3": {}, "mat3x4": {},
	"mat4x2": {}, "mat4x3": {}, "mat4x4": {},

	"ptr": {}, "array": {}, "atomic": {},

	"sampler": {}, "sampler_comparison": {},

	"texture_1d": {}, "texture_2d": {}, "texture_2d_array": {},
	"texture_3d": {}, "texture_cube": {}, "texture_cube_array": {},
	"texture_storage_1d": {}, "texture_storage_2d": {},
	"texture_storage_2d_array": {}, "texture_storage_3d": {},

	// texel formats
	"rgba8unorm": {}, "rgba8snorm": {}, "rgba8uint": {}, "rgba8sint": {},
	"rgba16uint": {}, "rgba16sint": {}, "rgba16float": {},
	"r32uint": {}, "r32sint": {}, "r32float": {},
	"rg32uint": {}, "rg32sint": {}, "rg32float": {},
	"rgba32uint": {}, "rgba32sint": {}, "rgba32float": {},
}

var reservedWords = map[string]struct{}{
	"asm": {}, "bf16": {}, "do": {}, "enum": {}, "f16": {}, "f64": {},
	"handle": {}, "i8": {}, "i16": {}, "i64": {}, "mat": {},
	"premerge": {}, "regardless": {}, "typedef": {}, "u8": {}, "u16": {},
	"u64": {}, "unless": {}, "using": {}, "vec": {}, "void": {},
	"while": {},
}

// Specialize reclassifies an identifier spelling. The bool result is false
// when the spelling matches no table and the token stays a plain Ident.
func Specialize(text string) (Kind, bool) {
	switch text {
	case "true", "false":
		return BoolLit, true
	case "enable":
		return Directive, true
	}
	if k, ok := keywords[text]; ok {
		return k, true
	}
	if _, ok := typeNames[text]; ok {
		return TypeName, true
	}
	if _, ok := reservedWords[text]; ok {
		return Reserved, true
	}
	return Ident, false
}
