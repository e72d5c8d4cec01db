package sf

import "github.com/semifab/secsmsg/secs2"

// Shared data item schemas of the standard message set, named after the
// SEMI E5 data item vocabulary. Schemas are immutable, so one instance
// serves every message type referencing the item.

// idTypes are the legal types of the identifier items (SVID, ECID, CEID
// and friends): a string name or a signed or unsigned numeric id of any
// width.
var idTypes = []string{
	secs2.ASCIIType,
	secs2.Uint8Type, secs2.Uint16Type, secs2.Uint32Type, secs2.Uint64Type,
	secs2.Int8Type, secs2.Int16Type, secs2.Int32Type, secs2.Int64Type,
}

// intTypes are the signed and unsigned integer types of any width.
var intTypes = []string{
	secs2.Uint8Type, secs2.Uint16Type, secs2.Uint32Type, secs2.Uint64Type,
	secs2.Int8Type, secs2.Int16Type, secs2.Int32Type, secs2.Int64Type,
}

// uintTypes are the unsigned integer types of any width.
var uintTypes = []string{
	secs2.Uint8Type, secs2.Uint16Type, secs2.Uint32Type, secs2.Uint64Type,
}

// objTypes are the legal types of the object service items (OBJTYPE,
// OBJID, ATTRID): a string or an unsigned numeric id.
var objTypes = []string{
	secs2.ASCIIType,
	secs2.Uint8Type, secs2.Uint16Type, secs2.Uint32Type, secs2.Uint64Type,
}

// Status and equipment constant items.
var (
	SVID   = Dyn(idTypes...)
	SV     = AnyItem()
	SVNAME = A(AnySize)
	UNITS  = A(AnySize)
	ECID   = Dyn(idTypes...)
	ECV    = AnyItem()
	ECNAME = A(AnySize)
	ECMIN  = AnyItem()
	ECMAX  = AnyItem()
	ECDEF  = AnyItem()
)

// Identification and communication items.
var (
	MDLN    = A(Max(20))
	COMMACK = B(Exact(1))
	OFLACK  = B(Exact(1))
	ONLACK  = B(Exact(1))
	EAC     = B(Exact(1))
	TIME    = A(Max(32))
)

// Event report and host command items.
var (
	DATAID = Dyn(idTypes...)
	RPTID  = Dyn(idTypes...)
	VID    = Dyn(idTypes...)
	CEID   = Dyn(idTypes...)
	DRACK  = B(Exact(1))
	LRACK  = B(Exact(1))
	CEED   = Boolean(Exact(1))
	ERACK  = B(Exact(1))
	RCMD   = Dyn(secs2.ASCIIType, secs2.Uint8Type, secs2.Int8Type)
	CPNAME = Dyn(idTypes...)
	CPVAL  = Dyn(append([]string{secs2.BinaryType, secs2.BooleanType}, idTypes...)...)
	HCACK  = B(Exact(1))
	CPACK  = B(Exact(1))
)

// Alarm items.
var (
	ALCD  = B(Exact(1))
	ALID  = Dyn(intTypes...)
	ALTX  = A(Max(120))
	ACKC5 = B(Exact(1))
)

// Data collection items.
var (
	DATALENGTH = Dyn(intTypes...)
	GRANT6     = B(Exact(1))
	ACKC6      = B(Exact(1))
	DSID       = Dyn(idTypes...)
	DVNAME     = Dyn(idTypes...)
	DVVAL      = Dyn(idTypes...)
	V          = AnyItem()
)

// Process program items.
var (
	PPID   = A(AnySize)
	LENGTH = U4(Exact(1))
	PPGNT  = B(Exact(1))
	PPBODY = B(AnySize)
	ACKC7  = B(Exact(1))
)

// System error items.
var (
	MHEAD = B(Exact(10))
	MEXP  = A(Max(6))
	EDID  = A(Max(80))
)

// Terminal service items.
var (
	TID    = B(Exact(1))
	TEXT   = A(AnySize)
	ACKC10 = B(Exact(1))
)

// Wafer map items.
var (
	MID   = A(Max(16))
	IDTYP = B(Exact(1))
	FNLOC = U2(Exact(1))
	FFROT = U2(Exact(1))
	ORLOC = B(Exact(1))
	RPSEL = U1(Exact(1))
	REFP  = I4(Exact(2))
	DUTMS = A(AnySize)
	XDIES = U4(Exact(1))
	YDIES = U4(Exact(1))
	ROWCT = U4(Exact(1))
	COLCT = U4(Exact(1))
	NULBC = Dyn(secs2.ASCIIType, secs2.Uint8Type)
	PRDCT = U4(Exact(1))
	PRAXI = B(Exact(1))
	BCEQU = U1(AnySize)
	MAPFT = B(Exact(1))
	MLCL  = U4(Exact(1))
	SDACK = B(Exact(1))
	GRNT1 = B(Exact(1))
	MDACK = B(Exact(1))
	RSINF = I4(Exact(3))
	STRP  = I2(Exact(2))
	BINLT = U1(AnySize)
	XYPOS = I2(Exact(2))
	SDBIN = B(Exact(1))
	MAPER = B(Exact(1))
	DATLC = U1(Exact(1))
)

// Object service items.
var (
	OBJSPEC  = A(AnySize)
	OBJTYPE  = Dyn(objTypes...)
	OBJID    = Dyn(objTypes...)
	ATTRID   = Dyn(objTypes...)
	ATTRDATA = AnyItem()
	ATTRRELN = U1(Exact(1))
	OBJACK   = U1(Exact(1))
	ERRCODE  = Dyn(uintTypes...)
	ERRTEXT  = A(Max(120))
)
