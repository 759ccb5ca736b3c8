package sac

import "strings"

// Header field counts per kind, in on-disk order.
const (
	NumFloats = 70
	NumInts   = 35
	NumBools  = 5
	NumTexts  = 23
)

// Sentinel values marking an unset header field.
const (
	FloatUnset = -12345.0
	IntUnset   = -12345
	TextUnset  = "-12345"
)

// HeaderVersion is the nvhdr value of every supported record.
const HeaderVersion = 6

// File type codes (iftype).
const (
	ITime = 1
	IRlim = 2
	IAmph = 3
	IXY   = 4
	IUnkn = 5
)

// FloatKey addresses a float header field.
type FloatKey int

// Float header fields.
const (
	Delta FloatKey = iota
	Depmin
	Depmax
	Scale
	Odelta
	B
	E
	O
	A
	Internal1
	T0
	T1
	T2
	T3
	T4
	T5
	T6
	T7
	T8
	T9
	F
	Resp0
	Resp1
	Resp2
	Resp3
	Resp4
	Resp5
	Resp6
	Resp7
	Resp8
	Resp9
	Stla
	Stlo
	Stel
	Stdp
	Evla
	Evlo
	Evel
	Evdp
	Mag
	User0
	User1
	User2
	User3
	User4
	User5
	User6
	User7
	User8
	User9
	Dist
	Az
	Baz
	Gcarc
	Internal2
	Internal3
	Depmen
	Cmpaz
	Cmpinc
	Xminimum
	Xmaximum
	Yminimum
	Ymaximum
	Unused1
	Unused2
	Unused3
	Unused4
	Unused5
	Unused6
	Unused7
)

// IntKey addresses an integer header field.
type IntKey int

// Integer header fields.
const (
	Nzyear IntKey = iota
	Nzjday
	Nzhour
	Nzmin
	Nzsec
	Nzmsec
	Nvhdr
	Norid
	Nevid
	Npts
	Internal4
	Nwfid
	Nxsize
	Nysize
	Unused8
	Iftype
	Idep
	Iztype
	Unused9
	Iinst
	Istreg
	Ievreg
	Ievtyp
	Iqual
	Isynth
	Imagtyp
	Imagsrc
	Unused10
	Unused11
	Unused12
	Unused13
	Unused14
	Unused15
	Unused16
	Unused17
)

// BoolKey addresses a logical header field.
type BoolKey int

// Logical header fields.
const (
	Leven BoolKey = iota
	Lpspol
	Lovrok
	Lcalda
	Unused18
)

// TextKey addresses a text header field.
type TextKey int

// Text header fields. Kevnm is the only double-width (16 byte) field.
const (
	Kstnm TextKey = iota
	Kevnm
	Khole
	Ko
	Ka
	Kt0
	Kt1
	Kt2
	Kt3
	Kt4
	Kt5
	Kt6
	Kt7
	Kt8
	Kt9
	Kf
	Kuser0
	Kuser1
	Kuser2
	Kcmpnm
	Knetwk
	Kdatrd
	Kinst
)

var floatNames = [NumFloats]string{
	"delta", "depmin", "depmax", "scale", "odelta", "b", "e", "o", "a", "internal1",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9",
	"f", "resp0", "resp1", "resp2", "resp3", "resp4", "resp5", "resp6", "resp7", "resp8", "resp9",
	"stla", "stlo", "stel", "stdp", "evla", "evlo", "evel", "evdp", "mag",
	"user0", "user1", "user2", "user3", "user4", "user5", "user6", "user7", "user8", "user9",
	"dist", "az", "baz", "gcarc", "internal2", "internal3", "depmen", "cmpaz", "cmpinc",
	"xminimum", "xmaximum", "yminimum", "ymaximum",
	"unused1", "unused2", "unused3", "unused4", "unused5", "unused6", "unused7",
}

var intNames = [NumInts]string{
	"nzyear", "nzjday", "nzhour", "nzmin", "nzsec", "nzmsec", "nvhdr", "norid", "nevid", "npts",
	"internal4", "nwfid", "nxsize", "nysize", "unused8", "iftype", "idep", "iztype", "unused9",
	"iinst", "istreg", "ievreg", "ievtyp", "iqual", "isynth", "imagtyp", "imagsrc",
	"unused10", "unused11", "unused12", "unused13", "unused14", "unused15", "unused16", "unused17",
}

var boolNames = [NumBools]string{"leven", "lpspol", "lovrok", "lcalda", "unused18"}

var textNames = [NumTexts]string{
	"kstnm", "kevnm", "khole", "ko", "ka",
	"kt0", "kt1", "kt2", "kt3", "kt4", "kt5", "kt6", "kt7", "kt8", "kt9",
	"kf", "kuser0", "kuser1", "kuser2", "kcmpnm", "knetwk", "kdatrd", "kinst",
}

func (k FloatKey) String() string {
	if k < 0 || int(k) >= NumFloats {
		return "unknown"
	}
	return floatNames[k]
}

func (k IntKey) String() string {
	if k < 0 || int(k) >= NumInts {
		return "unknown"
	}
	return intNames[k]
}

func (k BoolKey) String() string {
	if k < 0 || int(k) >= NumBools {
		return "unknown"
	}
	return boolNames[k]
}

func (k TextKey) String() string {
	if k < 0 || int(k) >= NumTexts {
		return "unknown"
	}
	return textNames[k]
}

// Width returns the on-disk width of the text field in bytes.
func (k TextKey) Width() int {
	if k == Kevnm {
		return 16
	}
	return 8
}

// Kind identifies the storage class of a header field.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindBool
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Field is a resolved header field reference. Only the key matching Kind is
// meaningful.
type Field struct {
	Name  string
	Kind  Kind
	Float FloatKey
	Int   IntKey
	Bool  BoolKey
	Text  TextKey
}

var fieldsByName = buildFieldIndex()

func buildFieldIndex() map[string]Field {
	m := make(map[string]Field, NumFloats+NumInts+NumBools+NumTexts)
	for i, n := range floatNames {
		m[n] = Field{Name: n, Kind: KindFloat, Float: FloatKey(i)}
	}
	for i, n := range intNames {
		m[n] = Field{Name: n, Kind: KindInt, Int: IntKey(i)}
	}
	for i, n := range boolNames {
		m[n] = Field{Name: n, Kind: KindBool, Bool: BoolKey(i)}
	}
	for i, n := range textNames {
		m[n] = Field{Name: n, Kind: KindText, Text: TextKey(i)}
	}
	return m
}

// LookupField resolves a case-insensitive field name.
func LookupField(name string) (Field, bool) {
	f, ok := fieldsByName[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// Fields returns every header field in on-disk order.
func Fields() []Field {
	out := make([]Field, 0, NumFloats+NumInts+NumBools+NumTexts)
	for _, n := range floatNames {
		out = append(out, fieldsByName[n])
	}
	for _, n := range intNames {
		out = append(out, fieldsByName[n])
	}
	for _, n := range boolNames {
		out = append(out, fieldsByName[n])
	}
	for _, n := range textNames {
		out = append(out, fieldsByName[n])
	}
	return out
}

// Header is the fixed-schema metadata block of a trace, grouped by field
// kind in on-disk order.
type Header struct {
	Floats [NumFloats]float32
	Ints   [NumInts]int32
	Bools  [NumBools]bool
	Texts  [NumTexts]string
}

// NewHeader returns a header with every field set to its sentinel and all
// logical fields false.
func NewHeader() Header {
	var h Header
	for i := range h.Floats {
		h.Floats[i] = FloatUnset
	}
	for i := range h.Ints {
		h.Ints[i] = IntUnset
	}
	for i := range h.Texts {
		h.Texts[i] = TextUnset
	}
	return h
}

// IsSet reports whether the float field holds a non-sentinel value.
func (h *Header) IsSet(k FloatKey) bool {
	return h.Floats[k] != FloatUnset
}

// Format renders the field value as text. Unset fields render as the
// sentinel.
func (h *Header) Format(f Field) string {
	switch f.Kind {
	case KindFloat:
		return formatFloat(float64(h.Floats[f.Float]))
	case KindInt:
		return formatInt(int(h.Ints[f.Int]))
	case KindBool:
		if h.Bools[f.Bool] {
			return "true"
		}
		return "false"
	case KindText:
		return h.Texts[f.Text]
	default:
		return ""
	}
}
