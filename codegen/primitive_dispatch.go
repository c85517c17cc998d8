package codegen

import "github.com/skx/forthc/instructions"

// compilePrimitive handles the fixed primitive catalog of §4.4.4: stack
// shuffling, return-stack transfer, arithmetic, bitwise, comparison,
// control-flow keywords, and the float-literal constants. Unrecognized
// words fall through to the runtime ABI catalog (instructions.Catalog),
// and finally to the caller's known-word / inline-declaration handling.
// handled is false only when w matches nothing at all in this layer.
func (g *Generator) compilePrimitive(w string) (consumed int, handled bool, err error) {
	switch w {
	case "DUP":
		g.dup()
		return 1, true, nil
	case "DROP":
		g.drop()
		return 1, true, nil
	case "SWAP":
		g.swap()
		return 1, true, nil
	case "OVER":
		g.over()
		return 1, true, nil

	case ">R":
		g.rpushI32(g.popI32())
		return 1, true, nil
	case "R>":
		g.pushI32(g.rpopI32())
		return 1, true, nil
	case "R@":
		g.pushI32(g.rpeekI32())
		return 1, true, nil

	case "+":
		g.binop("add")
		return 1, true, nil
	case "-":
		g.binop("sub")
		return 1, true, nil
	case "*":
		g.binop("mul")
		return 1, true, nil
	case "/":
		g.divMod(false)
		return 1, true, nil
	case "MOD":
		g.divMod(true)
		return 1, true, nil
	case "/MOD":
		g.slashMod()
		return 1, true, nil
	case "NEGATE":
		g.negate()
		return 1, true, nil

	case "AND":
		g.binop("and")
		return 1, true, nil
	case "OR":
		g.binop("or")
		return 1, true, nil
	case "XOR":
		g.binop("xor")
		return 1, true, nil
	case "LSHIFT":
		g.shift("shl")
		return 1, true, nil
	case "RSHIFT":
		g.shift("lshr")
		return 1, true, nil

	case "=":
		g.compare("eq")
		return 1, true, nil
	case "<>":
		g.compare("ne")
		return 1, true, nil
	case "<":
		g.compare("slt")
		return 1, true, nil
	case ">":
		g.compare("sgt")
		return 1, true, nil
	case "<=":
		g.compare("sle")
		return 1, true, nil
	case ">=":
		g.compare("sge")
		return 1, true, nil
	case "0=":
		g.zeroCompare("eq")
		return 1, true, nil
	case "0<":
		g.zeroCompare("slt")
		return 1, true, nil

	case "IF":
		g.beginIf()
		return 1, true, nil
	case "ELSE":
		return 1, true, g.doElse()
	case "THEN":
		return 1, true, g.endThen()
	case "BEGIN":
		g.beginBegin()
		return 1, true, nil
	case "WHILE":
		return 1, true, g.beginWhile()
	case "REPEAT":
		return 1, true, g.endRepeat()
	case "UNTIL":
		return 1, true, g.endUntil()

	case "F+INF":
		g.pushI32(itoa32(positiveInfinityBits()))
		return 1, true, nil
	case "F-INF":
		g.pushI32(itoa32(negativeInfinityBits()))
		return 1, true, nil
	case "FNAN":
		g.pushI32(itoa32(nanBits()))
		return 1, true, nil
	}

	if extern, ok := instructions.Catalog[w]; ok {
		return 1, true, g.callExternExtern(extern, nil)
	}

	return 0, false, nil
}
