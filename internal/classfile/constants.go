package classfile

const magic uint32 = 0xCAFEBABE

// Constant pool tags.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

// IDs of the fixed constant pool prefix.
const (
	IDClassName       uint16 = iota + 1 // Utf8 binary class name
	IDThisClass                         // Class #1
	IDIntDescriptor                     // Utf8 "I"
	IDConstantValue                     // Utf8 "ConstantValue"
	IDObjectName                        // Utf8 "java/lang/Object"
	IDSuperClass                        // Class #5
	IDInitName                          // Utf8 "<init>"
	IDInitDescriptor                    // Utf8 "()V"
	IDCode                              // Utf8 "Code"
	IDInitNameAndType                   // NameAndType #7:#8
	IDObjectInit                        // Methodref #6.#10

	fixedEntries = IDObjectInit
)

// fixedPrefix holds entries #2 to #11. Entry #1 depends on the class name
// and is written in front of it.
const fixedPrefix = "" +
	"\x07\x00\x01" +
	"\x01\x00\x01I" +
	"\x01\x00\x0dConstantValue" +
	"\x01\x00\x10java/lang/Object" +
	"\x07\x00\x05" +
	"\x01\x00\x06<init>" +
	"\x01\x00\x03()V" +
	"\x01\x00\x04Code" +
	"\x0c\x00\x07\x00\x08" +
	"\x0a\x00\x06\x00\x0a"

// Format limits.
const (
	MaxPoolID  = 0xFFFE
	MaxFields  = 0xFFFF
	MaxUTF8Len = 0xFFFF
)

// Access flags.
const (
	AccPublic    uint16 = 0x0001
	AccStatic    uint16 = 0x0008
	AccFinal     uint16 = 0x0010
	AccSuper     uint16 = 0x0020
	AccSynthetic uint16 = 0x1000

	ClassFlags       = AccPublic | AccFinal | AccSuper | AccSynthetic  // 0x1031
	FieldFlags       = AccPublic | AccStatic | AccFinal | AccSynthetic // 0x1019
	ConstructorFlags = AccPublic | AccSynthetic                        // 0x1001
)

// Bytecode of the default constructor.
const (
	opAload0        = 0x2a
	opInvokespecial = 0xb7
	opReturn        = 0xb1
)

// initCode is `aload_0; invokespecial #11; return`.
var initCode = []byte{opAload0, opInvokespecial, byte(IDObjectInit >> 8), byte(IDObjectInit), opReturn}

const (
	initMaxStack  = 1
	initMaxLocals = 1

	// codeAttrLen is the Code attribute body length: max_stack, max_locals,
	// code_length, code, exception_table_length, attributes_count.
	codeAttrLen = 2 + 2 + 4 + 5 + 2 + 2

	// constantValueLen is the ConstantValue attribute body length.
	constantValueLen = 2
)
