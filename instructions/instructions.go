// Package instructions is the runtime ABI catalog: the fixed table of
// extern symbols the C runtime must provide (§6), keyed by the source
// dialect word that invokes them, plus the call-shape each one expects.
//
// This is an in-kind enlargement of the teacher's instructions package,
// which held a byte-sized InstructionType enum plus an Instruction{Type,
// Value} pair describing one of five math operators. Here the same shape
// — a typed enum plus a small struct naming a callee — describes the much
// larger extern surface forthc's runtime ABI exposes.
package instructions

// Mode describes how many cells an extern call pops from the data stack,
// whether it pushes a result, and whether it returns void.
type Mode int

const (
	// PopVoid pops one i32 argument and returns void.
	PopVoid Mode = iota
	// Pop2Void pops two i32 arguments and returns void.
	Pop2Void
	// Pop3Void pops three i32 arguments and returns void.
	Pop3Void
	// Void takes no arguments and returns void.
	Void
	// RetPush takes no arguments, calls the extern, and pushes its i32 result.
	RetPush
	// PopRetPush pops one i32 argument, calls the extern, and pushes its i32 result.
	PopRetPush
	// Pop2RetPush pops two i32 arguments, calls the extern, and pushes its i32 result.
	Pop2RetPush
	// StrVoid consumes an immediate-string payload (not a stack value) and returns void.
	StrVoid
)

// Extern names one runtime ABI symbol and the calling shape codegen must
// use for it.
type Extern struct {
	// Callee is the bare LLVM function name (without the leading '@').
	Callee string
	Mode   Mode
}

// Catalog maps a source dialect word to the extern it dispatches to. It is
// the direct Go counterpart of the Rust reference's `externs` HashMap.
var Catalog = map[string]Extern{
	"PWRITE-I32":  {"pwrite_i32", PopVoid},
	".":           {"pwrite_i32", PopVoid},
	"PWRITE-BOOL": {"pwrite_bool", PopVoid},
	"PWRITE-CHAR": {"pwrite_char", PopVoid},
	"EMIT":        {"pwrite_char", PopVoid},
	"PWRITE-HEX":  {"pwrite_hex", PopVoid},
	"PWRITELN":    {"pwriteln", Void},
	"PWRITE-STR":  {"pwrite_str", StrVoid},

	"PREAD-I32":  {"pread_i32", RetPush},
	"PREAD-BOOL": {"pread_bool", RetPush},
	"PREAD-CHAR": {"pread_char", RetPush},
	"PREAD-F32":  {"pread_f32_bits", RetPush},
	"PREADLN":    {"preadln", Void},

	"PBOOL": {"pbool", PopRetPush},

	"HERE":  {"rt_here", RetPush},
	"ALLOT": {"rt_allot", PopVoid},

	"PVAR@":   {"pvar_get", PopRetPush},
	"PVAR!":   {"pvar_set", Pop2Void},
	"PFIELD@": {"pfield_get", Pop2RetPush},
	"PFIELD!": {"pfield_set", Pop3Void},

	"FADD":    {"fadd_bits", Pop2RetPush},
	"FSUB":    {"fsub_bits", Pop2RetPush},
	"FMUL":    {"fmul_bits", Pop2RetPush},
	"FDIV":    {"fdiv_bits", Pop2RetPush},
	"FNEGATE": {"fnegate_bits", PopRetPush},
	"FABS":    {"fabs_bits", PopRetPush},
	"F=":      {"feq_bits", Pop2RetPush},
	"F<":      {"flt_bits", Pop2RetPush},
	"F<=":     {"fle_bits", Pop2RetPush},
	"FZERO?":  {"fzero_bits", PopRetPush},
	"F0=":     {"fzero_bits", PopRetPush},
	"FINF?":   {"finf_bits", PopRetPush},
	"FNAN?":   {"fnan_bits", PopRetPush},

	"FFINITE?":   {"ffinite_bits", PopRetPush},
	"S>F":        {"s_to_f_bits", PopRetPush},
	"F>S":        {"f_bits_to_s", PopRetPush},
	"Q16.16>F":   {"q16_16_to_f_bits", PopRetPush},
	"F>Q16.16":   {"f_bits_to_q16_16", PopRetPush},
	"FROUND-I32": {"fround_i32_bits", PopRetPush},

	"F.":         {"pwrite_f32_bits", PopVoid},
	"WRITE-F32":  {"pwrite_f32_bits", PopVoid},
	"PWRITE-F32": {"pwrite_f32_bits", PopVoid},
}

// KernelAliases is keyed by a routine-alias (§4.4.6), not a source word, and
// names the runtime math kernel the aliased definition's body is replaced
// with.
var KernelAliases = map[string]Extern{
	"program::abs":     {"kp_fabs_f32_bits", PopRetPush},
	"program::sqrt":    {"kp_fsqrt_f32_bits", PopRetPush},
	"program::sin":     {"kp_fsin_f32_bits", PopRetPush},
	"program::cos":     {"kp_fcos_f32_bits", PopRetPush},
	"program::pow":     {"kp_fpow_f32_i32_bits", Pop2RetPush},
	"program::floor":   {"kp_ffloor_f32_bits", PopRetPush},
	"program::ceil":    {"kp_fceil_f32_bits", PopRetPush},
	"program::fx_sqrt": {"kp_fx_sqrt_i32", PopRetPush},
	"program::fx_sin":  {"kp_fx_sin_deg_i32", PopRetPush},
	"program::fx_cos":  {"kp_fx_cos_deg_i32", PopRetPush},
	"program::fx_tan":  {"kp_fx_tan_deg_i32", PopRetPush},
	"program::fx_asin": {"kp_fx_asin_fixed_i32", PopRetPush},
	"program::fx_acos": {"kp_fx_acos_fixed_i32", PopRetPush},
	"program::fx_atan": {"kp_fx_atan_fixed_i32", PopRetPush},
	"program::fx_ln":   {"kp_fx_ln_i32", PopRetPush},
	"program::fx_log":  {"kp_fx_log_i32", PopRetPush},
}

// Declarations is the fixed, ordered list of `declare` lines emitted in
// every module regardless of which externs the source program actually
// uses (§4.5).
var Declarations = []string{
	"declare void @pwrite_i32(i32)",
	"declare void @pwrite_bool(i32)",
	"declare void @pwrite_char(i32)",
	"declare void @pwrite_hex(i32)",
	"declare void @pwriteln()",
	"declare void @pwrite_str(i8*)",

	"declare i32 @pread_i32()",
	"declare i32 @pread_bool()",
	"declare i32 @pread_char()",
	"declare i32 @pread_f32_bits()",
	"declare void @preadln()",

	"declare i32 @pbool(i32)",

	"declare i32 @rt_here()",
	"declare void @rt_allot(i32)",
	"declare void @rt_heap_reset(i32)",

	"declare i32 @pvar_get(i32)",
	"declare void @pvar_set(i32, i32)",
	"declare i32 @pfield_get(i32, i32)",
	"declare void @pfield_set(i32, i32, i32)",

	"declare i32 @fadd_bits(i32, i32)",
	"declare i32 @fsub_bits(i32, i32)",
	"declare i32 @fmul_bits(i32, i32)",
	"declare i32 @fdiv_bits(i32, i32)",
	"declare i32 @fnegate_bits(i32)",
	"declare i32 @fabs_bits(i32)",
	"declare i32 @feq_bits(i32, i32)",
	"declare i32 @flt_bits(i32, i32)",
	"declare i32 @fle_bits(i32, i32)",
	"declare i32 @fzero_bits(i32)",
	"declare i32 @finf_bits(i32)",
	"declare i32 @fnan_bits(i32)",
	"declare i32 @ffinite_bits(i32)",
	"declare i32 @s_to_f_bits(i32)",
	"declare i32 @f_bits_to_s(i32)",
	"declare i32 @q16_16_to_f_bits(i32)",
	"declare i32 @f_bits_to_q16_16(i32)",
	"declare i32 @fround_i32_bits(i32)",
	"declare void @pwrite_f32_bits(i32)",

	"declare i32 @kp_fabs_f32_bits(i32)",
	"declare i32 @kp_fsqrt_f32_bits(i32)",
	"declare i32 @kp_fsin_f32_bits(i32)",
	"declare i32 @kp_fcos_f32_bits(i32)",
	"declare i32 @kp_fpow_f32_i32_bits(i32, i32)",
	"declare i32 @kp_ffloor_f32_bits(i32)",
	"declare i32 @kp_fceil_f32_bits(i32)",

	"declare i32 @kp_fx_sqrt_i32(i32)",
	"declare i32 @kp_fx_sin_deg_i32(i32)",
	"declare i32 @kp_fx_cos_deg_i32(i32)",
	"declare i32 @kp_fx_tan_deg_i32(i32)",
	"declare i32 @kp_fx_asin_fixed_i32(i32)",
	"declare i32 @kp_fx_acos_fixed_i32(i32)",
	"declare i32 @kp_fx_atan_fixed_i32(i32)",
	"declare i32 @kp_fx_ln_i32(i32)",
	"declare i32 @kp_fx_log_i32(i32)",
}
