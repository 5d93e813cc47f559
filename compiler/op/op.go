package op

// The built-in numeric operators of the interaction net runtime. Every
// operator takes two numbers, including NOT, which the runtime treats as
// a binary node like the rest and ignores its second operand.
type Op int

const (
	ADD Op = iota
	SUB
	MUL
	DIV
	MOD
	EQ
	NE
	LT
	GT
	AND
	OR
	XOR
	NOT
	LSH
	RSH
)

var symbols = [...]string{
	ADD: "+",
	SUB: "-",
	MUL: "*",
	DIV: "/",
	MOD: "%",
	EQ:  "==",
	NE:  "!=",
	LT:  "<",
	GT:  ">",
	AND: "&",
	OR:  "|",
	XOR: "^",
	NOT: "~",
	LSH: "<<",
	RSH: ">>",
}

// Every operator, in declaration order.
func All() []Op {
	ops := make([]Op, len(symbols))
	for i := range symbols {
		ops[i] = Op(i)
	}
	return ops
}

func (o Op) Valid() bool {
	return o >= ADD && o <= RSH
}

func (o Op) String() string {
	if !o.Valid() {
		panic("Invalid operator encountered.")
	}
	return symbols[o]
}

// Recover an operator from its symbol, as printed by String.
func Parse(symbol string) (Op, bool) {
	for i, s := range symbols {
		if s == symbol {
			return Op(i), true
		}
	}
	return 0, false
}
