package sf

// DefaultCatalog returns a new catalog pre-populated with the standard
// SEMI E5 message set: streams 1 (equipment status), 2 (equipment control),
// 5 (alarms), 6 (data collection), 7 (process programs), 9 (system errors),
// 10 (terminal services), 12 (wafer maps) and 14 (object services), plus
// the FxF0 abort entries.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for i := range defaultMessageTypes {
		c.MustRegister(&defaultMessageTypes[i])
	}

	return c
}

func desc(root Schema) *FormatDescriptor {
	return NewFormatDescriptor(root)
}

// Flags and structures follow SEMI E5. Header-only entries leave the
// descriptor nil.
var defaultMessageTypes = []MessageType{
	{Stream: 0, Function: 0, Name: "hsms communication", ToHost: true, ToEquipment: true},

	// stream 1: equipment status
	{Stream: 1, Function: 0, Name: "abort transaction stream 1", ToHost: true, ToEquipment: true},
	{Stream: 1, Function: 1, Name: "are you online - request", ToHost: true, ToEquipment: true, HasReply: true, ReplyRequired: true},
	{Stream: 1, Function: 2, Name: "on line data", ToHost: true, ToEquipment: true,
		Descriptor: desc(Array(MDLN))},
	{Stream: 1, Function: 3, Name: "selected equipment status - request", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(Array(SVID))},
	{Stream: 1, Function: 4, Name: "selected equipment status - data", ToHost: true, MultiBlock: true,
		Descriptor: desc(Array(SV))},
	{Stream: 1, Function: 11, Name: "status variable namelist - request", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(Array(SVID))},
	{Stream: 1, Function: 12, Name: "status variable namelist - reply", ToHost: true, MultiBlock: true,
		Descriptor: desc(Array(List(
			F("SVID", SVID),
			F("SVNAME", SVNAME),
			F("UNITS", UNITS),
		)))},
	{Stream: 1, Function: 13, Name: "establish communication - request", ToHost: true, ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(Array(MDLN))},
	{Stream: 1, Function: 14, Name: "establish communication - acknowledge", ToHost: true, ToEquipment: true,
		Descriptor: desc(List(
			F("COMMACK", COMMACK),
			F("DATA", Array(MDLN)),
		))},
	{Stream: 1, Function: 15, Name: "request offline", ToEquipment: true, HasReply: true, ReplyRequired: true},
	{Stream: 1, Function: 16, Name: "offline acknowledge", ToHost: true,
		Descriptor: desc(OFLACK)},
	{Stream: 1, Function: 17, Name: "request online", ToEquipment: true, HasReply: true, ReplyRequired: true},
	{Stream: 1, Function: 18, Name: "online acknowledge", ToHost: true,
		Descriptor: desc(ONLACK)},

	// stream 2: equipment control and diagnostics
	{Stream: 2, Function: 0, Name: "abort transaction stream 2", ToHost: true, ToEquipment: true},
	{Stream: 2, Function: 13, Name: "equipment constant - request", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(Array(ECID))},
	{Stream: 2, Function: 14, Name: "equipment constant - data", ToHost: true, MultiBlock: true,
		Descriptor: desc(Array(ECV))},
	{Stream: 2, Function: 15, Name: "new equipment constant - send", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(Array(List(
			F("ECID", ECID),
			F("ECV", ECV),
		)))},
	{Stream: 2, Function: 16, Name: "new equipment constant - acknowledge", ToHost: true,
		Descriptor: desc(EAC)},
	{Stream: 2, Function: 17, Name: "date and time - request", ToHost: true, ToEquipment: true, HasReply: true, ReplyRequired: true},
	{Stream: 2, Function: 18, Name: "date and time - data", ToHost: true, ToEquipment: true,
		Descriptor: desc(TIME)},
	{Stream: 2, Function: 29, Name: "equipment constant namelist - request", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(Array(ECID))},
	{Stream: 2, Function: 30, Name: "equipment constant namelist", ToHost: true, MultiBlock: true,
		Descriptor: desc(Array(List(
			F("ECID", ECID),
			F("ECNAME", ECNAME),
			F("ECMIN", ECMIN),
			F("ECMAX", ECMAX),
			F("ECDEF", ECDEF),
			F("UNITS", UNITS),
		)))},
	{Stream: 2, Function: 33, Name: "define report", ToEquipment: true, HasReply: true, ReplyRequired: true, MultiBlock: true,
		Descriptor: desc(List(
			F("DATAID", DATAID),
			F("DATA", Array(List(
				F("RPTID", RPTID),
				F("VID", Array(VID)),
			))),
		))},
	{Stream: 2, Function: 34, Name: "define report - acknowledge", ToHost: true,
		Descriptor: desc(DRACK)},
	{Stream: 2, Function: 35, Name: "link event report", ToEquipment: true, HasReply: true, ReplyRequired: true, MultiBlock: true,
		Descriptor: desc(List(
			F("DATAID", DATAID),
			F("DATA", Array(List(
				F("CEID", CEID),
				F("RPTID", Array(RPTID)),
			))),
		))},
	{Stream: 2, Function: 36, Name: "link event report - acknowledge", ToEquipment: true,
		Descriptor: desc(LRACK)},
	{Stream: 2, Function: 37, Name: "en-/disable event report", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("CEED", CEED),
			F("CEID", Array(CEID)),
		))},
	{Stream: 2, Function: 38, Name: "en-/disable event report - acknowledge", ToHost: true,
		Descriptor: desc(ERACK)},
	{Stream: 2, Function: 41, Name: "host command - send", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("RCMD", RCMD),
			F("PARAMS", Array(List(
				F("CPNAME", CPNAME),
				F("CPVAL", CPVAL),
			))),
		))},
	{Stream: 2, Function: 42, Name: "host command - acknowledge", ToHost: true,
		Descriptor: desc(List(
			F("HCACK", HCACK),
			F("PARAMS", Array(List(
				F("CPNAME", CPNAME),
				F("CPACK", CPACK),
			))),
		))},

	// stream 5: exception reporting
	{Stream: 5, Function: 0, Name: "abort transaction stream 5", ToHost: true, ToEquipment: true},
	{Stream: 5, Function: 1, Name: "alarm report - send", ToHost: true, HasReply: true,
		Descriptor: desc(List(
			F("ALCD", ALCD),
			F("ALID", ALID),
			F("ALTX", ALTX),
		))},
	{Stream: 5, Function: 2, Name: "alarm report - acknowledge", ToEquipment: true,
		Descriptor: desc(ACKC5)},

	// stream 6: data collection
	{Stream: 6, Function: 0, Name: "abort transaction stream 6", ToHost: true, ToEquipment: true},
	{Stream: 6, Function: 5, Name: "multi block data inquiry", ToHost: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("DATAID", DATAID),
			F("DATALENGTH", DATALENGTH),
		))},
	{Stream: 6, Function: 6, Name: "multi block data grant", ToEquipment: true,
		Descriptor: desc(GRANT6)},
	{Stream: 6, Function: 7, Name: "data transfer request", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(U4(Exact(1)))},
	{Stream: 6, Function: 8, Name: "data transfer data", ToHost: true, MultiBlock: true,
		Descriptor: desc(List(
			F("DATAID", DATAID),
			F("CEID", CEID),
			F("DS", Array(List(
				F("DSID", DSID),
				F("DV", Array(List(
					F("DVNAME", DVNAME),
					F("DVVAL", DVVAL),
				))),
			))),
		))},
	{Stream: 6, Function: 11, Name: "event report", ToHost: true, HasReply: true, ReplyRequired: true, MultiBlock: true,
		Descriptor: desc(List(
			F("DATAID", DATAID),
			F("CEID", CEID),
			F("RPT", Array(List(
				F("RPTID", RPTID),
				F("V", Array(V)),
			))),
		))},
	{Stream: 6, Function: 12, Name: "event report - acknowledge", ToEquipment: true,
		Descriptor: desc(ACKC6)},
	{Stream: 6, Function: 15, Name: "event report request", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(CEID)},
	{Stream: 6, Function: 16, Name: "event report data", ToHost: true, MultiBlock: true,
		Descriptor: desc(List(
			F("DATAID", DATAID),
			F("CEID", CEID),
			F("RPT", Array(List(
				F("RPTID", RPTID),
				F("V", Array(V)),
			))),
		))},
	{Stream: 6, Function: 19, Name: "individual report request", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(RPTID)},
	{Stream: 6, Function: 20, Name: "individual report data", ToHost: true, MultiBlock: true,
		Descriptor: desc(Array(V))},
	{Stream: 6, Function: 21, Name: "annotated individual report request", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(RPTID)},
	{Stream: 6, Function: 22, Name: "annotated individual report data", ToHost: true, MultiBlock: true,
		Descriptor: desc(Array(List(
			F("VID", VID),
			F("V", V),
		)))},

	// stream 7: process program management
	{Stream: 7, Function: 0, Name: "abort transaction stream 7", ToHost: true, ToEquipment: true},
	{Stream: 7, Function: 1, Name: "process program load - inquire", ToHost: true, ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("PPID", PPID),
			F("LENGTH", LENGTH),
		))},
	{Stream: 7, Function: 2, Name: "process program load - grant", ToHost: true, ToEquipment: true,
		Descriptor: desc(PPGNT)},
	{Stream: 7, Function: 3, Name: "process program - send", ToHost: true, ToEquipment: true, HasReply: true, ReplyRequired: true, MultiBlock: true,
		Descriptor: desc(List(
			F("PPID", PPID),
			F("PPBODY", PPBODY),
		))},
	{Stream: 7, Function: 4, Name: "process program - acknowledge", ToHost: true, ToEquipment: true,
		Descriptor: desc(ACKC7)},
	{Stream: 7, Function: 5, Name: "process program - request", ToHost: true, ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(PPID)},
	{Stream: 7, Function: 6, Name: "process program - data", ToHost: true, ToEquipment: true, MultiBlock: true,
		Descriptor: desc(List(
			F("PPID", PPID),
			F("PPBODY", PPBODY),
		))},
	{Stream: 7, Function: 17, Name: "delete process program - send", ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(Array(PPID))},
	{Stream: 7, Function: 18, Name: "delete process program - acknowledge", ToHost: true,
		Descriptor: desc(ACKC7)},
	{Stream: 7, Function: 19, Name: "current equipment process program - request", ToEquipment: true, HasReply: true, ReplyRequired: true},
	{Stream: 7, Function: 20, Name: "current equipment process program - data", ToHost: true, MultiBlock: true,
		Descriptor: desc(Array(PPID))},

	// stream 9: system errors
	{Stream: 9, Function: 0, Name: "abort transaction stream 9", ToHost: true, ToEquipment: true},
	{Stream: 9, Function: 1, Name: "unrecognized device id", ToHost: true,
		Descriptor: desc(MHEAD)},
	{Stream: 9, Function: 3, Name: "unrecognized stream type", ToHost: true,
		Descriptor: desc(MHEAD)},
	{Stream: 9, Function: 5, Name: "unrecognized function type", ToHost: true,
		Descriptor: desc(MHEAD)},
	{Stream: 9, Function: 7, Name: "illegal data", ToHost: true,
		Descriptor: desc(MHEAD)},
	{Stream: 9, Function: 9, Name: "transaction timer timeout", ToHost: true,
		Descriptor: desc(MHEAD)},
	{Stream: 9, Function: 11, Name: "data too long", ToHost: true,
		Descriptor: desc(MHEAD)},
	{Stream: 9, Function: 13, Name: "conversation timeout", ToHost: true,
		Descriptor: desc(List(
			F("MEXP", MEXP),
			F("EDID", EDID),
		))},

	// stream 10: terminal services
	{Stream: 10, Function: 0, Name: "abort transaction stream 10", ToHost: true, ToEquipment: true},
	{Stream: 10, Function: 1, Name: "terminal - request", ToHost: true, HasReply: true,
		Descriptor: desc(List(
			F("TID", TID),
			F("TEXT", TEXT),
		))},
	{Stream: 10, Function: 2, Name: "terminal - acknowledge", ToEquipment: true,
		Descriptor: desc(ACKC10)},
	{Stream: 10, Function: 3, Name: "terminal single - display", ToEquipment: true, HasReply: true,
		Descriptor: desc(List(
			F("TID", TID),
			F("TEXT", TEXT),
		))},
	{Stream: 10, Function: 4, Name: "terminal single - acknowledge", ToHost: true,
		Descriptor: desc(ACKC10)},

	// stream 12: wafer mapping
	{Stream: 12, Function: 0, Name: "abort transaction stream 12", ToHost: true, ToEquipment: true},
	{Stream: 12, Function: 1, Name: "map setup data - send", ToHost: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("FNLOC", FNLOC),
			F("FFROT", FFROT),
			F("ORLOC", ORLOC),
			F("RPSEL", RPSEL),
			F("REF", Array(REFP)),
			F("DUTMS", DUTMS),
			F("XDIES", XDIES),
			F("YDIES", YDIES),
			F("ROWCT", ROWCT),
			F("COLCT", COLCT),
			F("NULBC", NULBC),
			F("PRDCT", PRDCT),
			F("PRAXI", PRAXI),
		))},
	{Stream: 12, Function: 2, Name: "map setup data - acknowledge", ToEquipment: true,
		Descriptor: desc(SDACK)},
	{Stream: 12, Function: 3, Name: "map setup data - request", ToHost: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("MAPFT", MAPFT),
			F("FNLOC", FNLOC),
			F("FFROT", FFROT),
			F("ORLOC", ORLOC),
			F("PRAXI", PRAXI),
			F("BCEQU", BCEQU),
			F("NULBC", NULBC),
		))},
	{Stream: 12, Function: 4, Name: "map setup data", ToEquipment: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("FNLOC", FNLOC),
			F("ORLOC", ORLOC),
			F("RPSEL", RPSEL),
			F("REF", Array(REFP)),
			F("DUTMS", DUTMS),
			F("XDIES", XDIES),
			F("YDIES", YDIES),
			F("ROWCT", ROWCT),
			F("COLCT", COLCT),
			F("PRDCT", PRDCT),
			F("BCEQU", BCEQU),
			F("NULBC", NULBC),
			F("MLCL", MLCL),
		))},
	{Stream: 12, Function: 5, Name: "map transmit inquire", ToHost: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("MAPFT", MAPFT),
			F("MLCL", MLCL),
		))},
	{Stream: 12, Function: 6, Name: "map transmit - grant", ToEquipment: true,
		Descriptor: desc(GRNT1)},
	{Stream: 12, Function: 7, Name: "map data type 1 - send", ToHost: true, HasReply: true, ReplyRequired: true, MultiBlock: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("DATA", Array(List(
				F("RSINF", RSINF),
				F("BINLT", BINLT),
			))),
		))},
	{Stream: 12, Function: 8, Name: "map data type 1 - acknowledge", ToEquipment: true,
		Descriptor: desc(MDACK)},
	{Stream: 12, Function: 9, Name: "map data type 2 - send", ToHost: true, HasReply: true, ReplyRequired: true, MultiBlock: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("STRP", STRP),
			F("BINLT", BINLT),
		))},
	{Stream: 12, Function: 10, Name: "map data type 2 - acknowledge", ToEquipment: true,
		Descriptor: desc(MDACK)},
	{Stream: 12, Function: 11, Name: "map data type 3 - send", ToHost: true, HasReply: true, ReplyRequired: true, MultiBlock: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("DATA", Array(List(
				F("XYPOS", XYPOS),
				F("BINLT", BINLT),
			))),
		))},
	{Stream: 12, Function: 12, Name: "map data type 3 - acknowledge", ToEquipment: true,
		Descriptor: desc(MDACK)},
	{Stream: 12, Function: 13, Name: "map data type 1 - request", ToHost: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
		))},
	{Stream: 12, Function: 14, Name: "map data type 1", ToEquipment: true, MultiBlock: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("DATA", Array(List(
				F("RSINF", RSINF),
				F("BINLT", BINLT),
			))),
		))},
	{Stream: 12, Function: 15, Name: "map data type 2 - request", ToHost: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
		))},
	{Stream: 12, Function: 16, Name: "map data type 2", ToEquipment: true, MultiBlock: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("STRP", STRP),
			F("BINLT", BINLT),
		))},
	{Stream: 12, Function: 17, Name: "map data type 3 - request", ToHost: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("SDBIN", SDBIN),
		))},
	{Stream: 12, Function: 18, Name: "map data type 3", ToEquipment: true, MultiBlock: true,
		Descriptor: desc(List(
			F("MID", MID),
			F("IDTYP", IDTYP),
			F("DATA", Array(List(
				F("XYPOS", XYPOS),
				F("BINLT", BINLT),
			))),
		))},
	{Stream: 12, Function: 19, Name: "map error report - send", ToHost: true, ToEquipment: true,
		Descriptor: desc(List(
			F("MAPER", MAPER),
			F("DATLC", DATLC),
		))},

	// stream 14: object services
	{Stream: 14, Function: 0, Name: "abort transaction stream 14", ToHost: true, ToEquipment: true},
	{Stream: 14, Function: 1, Name: "get attributes - request", ToHost: true, ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("OBJSPEC", OBJSPEC),
			F("OBJTYPE", OBJTYPE),
			F("OBJID", Array(OBJID)),
			F("FILTER", Array(List(
				F("ATTRID", ATTRID),
				F("ATTRDATA", ATTRDATA),
				F("ATTRRELN", ATTRRELN),
			))),
			F("ATTRID", Array(ATTRID)),
		))},
	{Stream: 14, Function: 2, Name: "get attributes - data", ToHost: true, ToEquipment: true, MultiBlock: true,
		Descriptor: desc(List(
			F("DATA", Array(List(
				F("OBJID", OBJID),
				F("ATTRIBS", Array(List(
					F("ATTRID", ATTRID),
					F("ATTRDATA", ATTRDATA),
				))),
			))),
			F("ERRORS", List(
				F("OBJACK", OBJACK),
				F("ERROR", Array(List(
					F("ERRCODE", ERRCODE),
					F("ERRTEXT", ERRTEXT),
				))),
			)),
		))},
	{Stream: 14, Function: 3, Name: "set attributes - request", ToHost: true, ToEquipment: true, HasReply: true, ReplyRequired: true,
		Descriptor: desc(List(
			F("OBJSPEC", OBJSPEC),
			F("OBJTYPE", OBJTYPE),
			F("OBJID", Array(OBJID)),
			F("ATTRIBS", Array(List(
				F("ATTRID", ATTRID),
				F("ATTRDATA", ATTRDATA),
			))),
		))},
	{Stream: 14, Function: 4, Name: "set attributes - data", ToHost: true, ToEquipment: true, MultiBlock: true,
		Descriptor: desc(List(
			F("DATA", Array(List(
				F("OBJID", OBJID),
				F("ATTRIBS", Array(List(
					F("ATTRID", ATTRID),
					F("ATTRDATA", ATTRDATA),
				))),
			))),
			F("ERRORS", List(
				F("OBJACK", OBJACK),
				F("ERROR", Array(List(
					F("ERRCODE", ERRCODE),
					F("ERRTEXT", ERRTEXT),
				))),
			)),
		))},
}
