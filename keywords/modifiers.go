package keywords

// List from https://www.w3schools.com/java/java_modifiers.asp
var (
	AccessModifiers    = []string{"private", "protected", "public"}
	NonAccessModifiers = []string{"final", "static", "abstract", "transient", "synchronized", "volatile"}
)

var (
	PrimitiveTypes = []string{"byte", "short", "int", "long", "float", "double", "boolean", "char", "void"}
)

// Modifiers is a set of Java modifiers that were declared on a type or member
type Modifiers uint16

const (
	Public Modifiers = 1 << iota
	Protected
	Private
	Final
	Static
	Abstract
	Transient
	Synchronized
	Volatile
)

var modifierNames = map[string]Modifiers{
	"public":       Public,
	"protected":    Protected,
	"private":      Private,
	"final":        Final,
	"static":       Static,
	"abstract":     Abstract,
	"transient":    Transient,
	"synchronized": Synchronized,
	"volatile":     Volatile,
}

// ParseModifier returns the modifier for the given keyword, and false if the
// keyword is not one of the tracked modifiers (annotations, `default`, etc...)
func ParseModifier(keyword string) (Modifiers, bool) {
	mod, ok := modifierNames[keyword]
	return mod, ok
}

// Has reports whether all of the given modifiers are present in the set
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

// IsPrimitive reports whether the given type name is a Java primitive type
func IsPrimitive(typeName string) bool {
	for _, primitive := range PrimitiveTypes {
		if primitive == typeName {
			return true
		}
	}
	return false
}

// abstract 	continue 	for 	new 	switch
// assert*** 	default 	goto* 	package 	synchronized
// boolean 	do 	if 	private 	this
// break 	double 	implements 	protected 	throw
// byte 	else 	import 	public 	throws
// case 	enum**** 	instanceof 	return 	transient
// catch 	extends 	int 	short 	try
// char 	final 	interface 	static 	void
// class 	finally 	long 	strictfp** 	volatile
// const* 	float 	native 	super 	while
