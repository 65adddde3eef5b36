package hii

import "fmt"

// IFROpCode is the op-code byte of an IFR record (EFI_IFR_*_OP).
type IFROpCode uint8

// IFR op-codes as numbered by UEFI (EFI_IFR_*_OP).
const (
	IFRFormOp              IFROpCode = 0x01
	IFRSubtitleOp          IFROpCode = 0x02
	IFRTextOp              IFROpCode = 0x03
	IFRImageOp             IFROpCode = 0x04
	IFROneOfOp             IFROpCode = 0x05
	IFRCheckboxOp          IFROpCode = 0x06
	IFRNumericOp           IFROpCode = 0x07
	IFRPasswordOp          IFROpCode = 0x08
	IFROneOfOptionOp       IFROpCode = 0x09
	IFRSuppressIfOp        IFROpCode = 0x0A
	IFRLockedOp            IFROpCode = 0x0B
	IFRActionOp            IFROpCode = 0x0C
	IFRResetButtonOp       IFROpCode = 0x0D
	IFRFormSetOp           IFROpCode = 0x0E
	IFRRefOp               IFROpCode = 0x0F
	IFRNoSubmitIfOp        IFROpCode = 0x10
	IFRInconsistentIfOp    IFROpCode = 0x11
	IFREqIdValOp           IFROpCode = 0x12
	IFREqIdIdOp            IFROpCode = 0x13
	IFREqIdValListOp       IFROpCode = 0x14
	IFRAndOp               IFROpCode = 0x15
	IFROrOp                IFROpCode = 0x16
	IFRNotOp               IFROpCode = 0x17
	IFRRuleOp              IFROpCode = 0x18
	IFRGrayOutIfOp         IFROpCode = 0x19
	IFRDateOp              IFROpCode = 0x1A
	IFRTimeOp              IFROpCode = 0x1B
	IFRStringOp            IFROpCode = 0x1C
	IFRRefreshOp           IFROpCode = 0x1D
	IFRDisableIfOp         IFROpCode = 0x1E
	IFRAnimationOp         IFROpCode = 0x1F
	IFRToLowerOp           IFROpCode = 0x20
	IFRToUpperOp           IFROpCode = 0x21
	IFRMapOp               IFROpCode = 0x22
	IFROrderedListOp       IFROpCode = 0x23
	IFRVarstoreOp          IFROpCode = 0x24
	IFRVarstoreNameValueOp IFROpCode = 0x25
	IFRVarstoreEfiOp       IFROpCode = 0x26
	IFRVarstoreDeviceOp    IFROpCode = 0x27
	IFRVersionOp           IFROpCode = 0x28
	IFREndOp               IFROpCode = 0x29
	IFRMatchOp             IFROpCode = 0x2A
	IFRGetOp               IFROpCode = 0x2B
	IFRSetOp               IFROpCode = 0x2C
	IFRReadOp              IFROpCode = 0x2D
	IFRWriteOp             IFROpCode = 0x2E
	IFREqualOp             IFROpCode = 0x2F
	IFRNotEqualOp          IFROpCode = 0x30
	IFRGreaterThanOp       IFROpCode = 0x31
	IFRGreaterEqualOp      IFROpCode = 0x32
	IFRLessThanOp          IFROpCode = 0x33
	IFRLessEqualOp         IFROpCode = 0x34
	IFRBitwiseAndOp        IFROpCode = 0x35
	IFRBitwiseOrOp         IFROpCode = 0x36
	IFRBitwiseNotOp        IFROpCode = 0x37
	IFRShiftLeftOp         IFROpCode = 0x38
	IFRShiftRightOp        IFROpCode = 0x39
	IFRAddOp               IFROpCode = 0x3A
	IFRSubtractOp          IFROpCode = 0x3B
	IFRMultiplyOp          IFROpCode = 0x3C
	IFRDivideOp            IFROpCode = 0x3D
	IFRModuloOp            IFROpCode = 0x3E
	IFRRuleRefOp           IFROpCode = 0x3F
	IFRQuestionRef1Op      IFROpCode = 0x40
	IFRQuestionRef2Op      IFROpCode = 0x41
	IFRUint8Op             IFROpCode = 0x42
	IFRUint16Op            IFROpCode = 0x43
	IFRUint32Op            IFROpCode = 0x44
	IFRUint64Op            IFROpCode = 0x45
	IFRTrueOp              IFROpCode = 0x46
	IFRFalseOp             IFROpCode = 0x47
	IFRToUintOp            IFROpCode = 0x48
	IFRToStringOp          IFROpCode = 0x49
	IFRToBooleanOp         IFROpCode = 0x4A
	IFRMidOp               IFROpCode = 0x4B
	IFRFindOp              IFROpCode = 0x4C
	IFRTokenOp             IFROpCode = 0x4D
	IFRStringRef1Op        IFROpCode = 0x4E
	IFRStringRef2Op        IFROpCode = 0x4F
	IFRConditionalOp       IFROpCode = 0x50
	IFRQuestionRef3Op      IFROpCode = 0x51
	IFRZeroOp              IFROpCode = 0x52
	IFROneOp               IFROpCode = 0x53
	IFROnesOp              IFROpCode = 0x54
	IFRUndefinedOp         IFROpCode = 0x55
	IFRLengthOp            IFROpCode = 0x56
	IFRDupOp               IFROpCode = 0x57
	IFRThisOp              IFROpCode = 0x58
	IFRSpanOp              IFROpCode = 0x59
	IFRValueOp             IFROpCode = 0x5A
	IFRDefaultOp           IFROpCode = 0x5B
	IFRDefaultStoreOp      IFROpCode = 0x5C
	IFRFormMapOp           IFROpCode = 0x5D
	IFRCatenateOp          IFROpCode = 0x5E
	IFRGuidOp              IFROpCode = 0x5F
	IFRSecurityOp          IFROpCode = 0x60
	IFRModalTagOp          IFROpCode = 0x61
	IFRRefreshIdOp         IFROpCode = 0x62
	IFRWarningIfOp         IFROpCode = 0x63
	IFRMatch2Op            IFROpCode = 0x64
)

// IFRLastOpCode is the highest op-code this table names. Larger values are
// walked structurally but classified as unknown.
const IFRLastOpCode = IFRMatch2Op

var ifrOpCodeNames = [...]string{
	IFRFormOp:              "EFI_IFR_FORM_OP",
	IFRSubtitleOp:          "EFI_IFR_SUBTITLE_OP",
	IFRTextOp:              "EFI_IFR_TEXT_OP",
	IFRImageOp:             "EFI_IFR_IMAGE_OP",
	IFROneOfOp:             "EFI_IFR_ONE_OF_OP",
	IFRCheckboxOp:          "EFI_IFR_CHECKBOX_OP",
	IFRNumericOp:           "EFI_IFR_NUMERIC_OP",
	IFRPasswordOp:          "EFI_IFR_PASSWORD_OP",
	IFROneOfOptionOp:       "EFI_IFR_ONE_OF_OPTION_OP",
	IFRSuppressIfOp:        "EFI_IFR_SUPPRESS_IF_OP",
	IFRLockedOp:            "EFI_IFR_LOCKED_OP",
	IFRActionOp:            "EFI_IFR_ACTION_OP",
	IFRResetButtonOp:       "EFI_IFR_RESET_BUTTON_OP",
	IFRFormSetOp:           "EFI_IFR_FORM_SET_OP",
	IFRRefOp:               "EFI_IFR_REF_OP",
	IFRNoSubmitIfOp:        "EFI_IFR_NO_SUBMIT_IF_OP",
	IFRInconsistentIfOp:    "EFI_IFR_INCONSISTENT_IF_OP",
	IFREqIdValOp:           "EFI_IFR_EQ_ID_VAL_OP",
	IFREqIdIdOp:            "EFI_IFR_EQ_ID_ID_OP",
	IFREqIdValListOp:       "EFI_IFR_EQ_ID_VAL_LIST_OP",
	IFRAndOp:               "EFI_IFR_AND_OP",
	IFROrOp:                "EFI_IFR_OR_OP",
	IFRNotOp:               "EFI_IFR_NOT_OP",
	IFRRuleOp:              "EFI_IFR_RULE_OP",
	IFRGrayOutIfOp:         "EFI_IFR_GRAY_OUT_IF_OP",
	IFRDateOp:              "EFI_IFR_DATE_OP",
	IFRTimeOp:              "EFI_IFR_TIME_OP",
	IFRStringOp:            "EFI_IFR_STRING_OP",
	IFRRefreshOp:           "EFI_IFR_REFRESH_OP",
	IFRDisableIfOp:         "EFI_IFR_DISABLE_IF_OP",
	IFRAnimationOp:         "EFI_IFR_ANIMATION_OP",
	IFRToLowerOp:           "EFI_IFR_TO_LOWER_OP",
	IFRToUpperOp:           "EFI_IFR_TO_UPPER_OP",
	IFRMapOp:               "EFI_IFR_MAP_OP",
	IFROrderedListOp:       "EFI_IFR_ORDERED_LIST_OP",
	IFRVarstoreOp:          "EFI_IFR_VARSTORE_OP",
	IFRVarstoreNameValueOp: "EFI_IFR_VARSTORE_NAME_VALUE_OP",
	IFRVarstoreEfiOp:       "EFI_IFR_VARSTORE_EFI_OP",
	IFRVarstoreDeviceOp:    "EFI_IFR_VARSTORE_DEVICE_OP",
	IFRVersionOp:           "EFI_IFR_VERSION_OP",
	IFREndOp:               "EFI_IFR_END_OP",
	IFRMatchOp:             "EFI_IFR_MATCH_OP",
	IFRGetOp:               "EFI_IFR_GET_OP",
	IFRSetOp:               "EFI_IFR_SET_OP",
	IFRReadOp:              "EFI_IFR_READ_OP",
	IFRWriteOp:             "EFI_IFR_WRITE_OP",
	IFREqualOp:             "EFI_IFR_EQUAL_OP",
	IFRNotEqualOp:          "EFI_IFR_NOT_EQUAL_OP",
	IFRGreaterThanOp:       "EFI_IFR_GREATER_THAN_OP",
	IFRGreaterEqualOp:      "EFI_IFR_GREATER_EQUAL_OP",
	IFRLessThanOp:          "EFI_IFR_LESS_THAN_OP",
	IFRLessEqualOp:         "EFI_IFR_LESS_EQUAL_OP",
	IFRBitwiseAndOp:        "EFI_IFR_BITWISE_AND_OP",
	IFRBitwiseOrOp:         "EFI_IFR_BITWISE_OR_OP",
	IFRBitwiseNotOp:        "EFI_IFR_BITWISE_NOT_OP",
	IFRShiftLeftOp:         "EFI_IFR_SHIFT_LEFT_OP",
	IFRShiftRightOp:        "EFI_IFR_SHIFT_RIGHT_OP",
	IFRAddOp:               "EFI_IFR_ADD_OP",
	IFRSubtractOp:          "EFI_IFR_SUBTRACT_OP",
	IFRMultiplyOp:          "EFI_IFR_MULTIPLY_OP",
	IFRDivideOp:            "EFI_IFR_DIVIDE_OP",
	IFRModuloOp:            "EFI_IFR_MODULO_OP",
	IFRRuleRefOp:           "EFI_IFR_RULE_REF_OP",
	IFRQuestionRef1Op:      "EFI_IFR_QUESTION_REF1_OP",
	IFRQuestionRef2Op:      "EFI_IFR_QUESTION_REF2_OP",
	IFRUint8Op:             "EFI_IFR_UINT8_OP",
	IFRUint16Op:            "EFI_IFR_UINT16_OP",
	IFRUint32Op:            "EFI_IFR_UINT32_OP",
	IFRUint64Op:            "EFI_IFR_UINT64_OP",
	IFRTrueOp:              "EFI_IFR_TRUE_OP",
	IFRFalseOp:             "EFI_IFR_FALSE_OP",
	IFRToUintOp:            "EFI_IFR_TO_UINT_OP",
	IFRToStringOp:          "EFI_IFR_TO_STRING_OP",
	IFRToBooleanOp:         "EFI_IFR_TO_BOOLEAN_OP",
	IFRMidOp:               "EFI_IFR_MID_OP",
	IFRFindOp:              "EFI_IFR_FIND_OP",
	IFRTokenOp:             "EFI_IFR_TOKEN_OP",
	IFRStringRef1Op:        "EFI_IFR_STRING_REF1_OP",
	IFRStringRef2Op:        "EFI_IFR_STRING_REF2_OP",
	IFRConditionalOp:       "EFI_IFR_CONDITIONAL_OP",
	IFRQuestionRef3Op:      "EFI_IFR_QUESTION_REF3_OP",
	IFRZeroOp:              "EFI_IFR_ZERO_OP",
	IFROneOp:               "EFI_IFR_ONE_OP",
	IFROnesOp:              "EFI_IFR_ONES_OP",
	IFRUndefinedOp:         "EFI_IFR_UNDEFINED_OP",
	IFRLengthOp:            "EFI_IFR_LENGTH_OP",
	IFRDupOp:               "EFI_IFR_DUP_OP",
	IFRThisOp:              "EFI_IFR_THIS_OP",
	IFRSpanOp:              "EFI_IFR_SPAN_OP",
	IFRValueOp:             "EFI_IFR_VALUE_OP",
	IFRDefaultOp:           "EFI_IFR_DEFAULT_OP",
	IFRDefaultStoreOp:      "EFI_IFR_DEFAULT_STORE_OP",
	IFRFormMapOp:           "EFI_IFR_FORM_MAP_OP",
	IFRCatenateOp:          "EFI_IFR_CATENATE_OP",
	IFRGuidOp:              "EFI_IFR_GUID_OP",
	IFRSecurityOp:          "EFI_IFR_SECURITY_OP",
	IFRModalTagOp:          "EFI_IFR_MODAL_TAG_OP",
	IFRRefreshIdOp:         "EFI_IFR_REFRESH_ID_OP",
	IFRWarningIfOp:         "EFI_IFR_WARNING_IF_OP",
	IFRMatch2Op:            "EFI_IFR_MATCH2_OP",
}

// IsKnown reports whether c is one of the named op-codes.
func (c IFROpCode) IsKnown() bool {
	return c >= IFRFormOp && c <= IFRLastOpCode
}

// String returns the UEFI name, e.g. "EFI_IFR_FORM_SET_OP", or a hex
// placeholder for unknown op-codes.
func (c IFROpCode) String() string {
	if !c.IsKnown() {
		return fmt.Sprintf("EFI_IFR_UNKNOWN_OP(0x%02X)", uint8(c))
	}
	return ifrOpCodeNames[c]
}

// IsExpression reports whether c belongs to the expression class. Unknown
// op-codes are never expressions. The ranges follow the grouping of the
// op-code table and are only used for statistics; walking a form never
// depends on them.
func (c IFROpCode) IsExpression() bool {
	switch {
	case c >= IFREqIdValOp && c <= IFRNotOp,
		c >= IFRMatchOp && c <= IFRSetOp,
		c >= IFREqualOp && c <= IFRSpanOp:
		return true
	}
	switch c {
	case IFRCatenateOp, IFRToLowerOp, IFRToUpperOp, IFRMapOp,
		IFRVersionOp, IFRSecurityOp, IFRMatch2Op:
		return true
	}
	return false
}
