package atom

// Record types understood by Decode, plus the containers a scanner needs to
// recognise.
const (
	RTDocument           uint16 = 0x03E8 // container
	RTDocumentAtom       uint16 = 0x03E9
	RTSlide              uint16 = 0x03EE // container
	RTSlideAtom          uint16 = 0x03EF
	RTNotes              uint16 = 0x03F0 // container
	RTNotesAtom          uint16 = 0x03F1
	RTSlidePersistAtom   uint16 = 0x03F3
	RTMainMaster         uint16 = 0x03F8 // container
	RTExObjRefAtom       uint16 = 0x0BC1
	RTPlaceholderAtom    uint16 = 0x0BC3
	RTTextHeaderAtom     uint16 = 0x0F9F
	RTMasterTextPropAtom uint16 = 0x0FA2
	RTFontEntityAtom     uint16 = 0x0FB7
	RTCString            uint16 = 0x0FBA
	RTExOleObjAtom       uint16 = 0x0FC3
	RTExObjList          uint16 = 0x0409 // container
	RTExHyperlink        uint16 = 0x0FD7 // container
	RTExHyperlinkAtom    uint16 = 0x0FD3
	RTSlideListWithText  uint16 = 0x0FF0 // container
)

// Instances of RTSlideListWithText.
const (
	ListSlides  uint16 = 0
	ListMasters uint16 = 1
	ListNotes   uint16 = 2
)

// ContainerVersion is the recVer value that marks a container record.
const ContainerVersion uint8 = 0xF

// HeaderSize is the encoded size of a RecordHeader.
const HeaderSize = 8

var recordNames = map[uint16]string{
	RTDocument:           "Document",
	RTDocumentAtom:       "DocumentAtom",
	RTSlide:              "Slide",
	RTSlideAtom:          "SlideAtom",
	RTNotes:              "Notes",
	RTNotesAtom:          "NotesAtom",
	RTSlidePersistAtom:   "SlidePersistAtom",
	RTMainMaster:         "MainMaster",
	RTExObjRefAtom:       "ExObjRefAtom",
	RTPlaceholderAtom:    "PlaceholderAtom",
	RTTextHeaderAtom:     "TextHeaderAtom",
	RTMasterTextPropAtom: "MasterTextPropAtom",
	RTFontEntityAtom:     "FontEntityAtom",
	RTCString:            "CString",
	RTExOleObjAtom:       "ExOleObjAtom",
	RTExObjList:          "ExObjList",
	RTExHyperlink:        "ExHyperlink",
	RTExHyperlinkAtom:    "ExHyperlinkAtom",
	RTSlideListWithText:  "SlideListWithText",
}

// RecordName returns a readable name for a record type, or "" if unknown.
func RecordName(recType uint16) string {
	return recordNames[recType]
}
