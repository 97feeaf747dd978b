package backends

// OpType is an enum of all generic operations that can be supported by a Backend.Builder.
//
// Notice: nothing precludes a specialized backend Builder to support other ops not included here.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota
	OpTypeParameter
	OpTypeConstant

	OpTypeAbs
	OpTypeAcos
	OpTypeAdd
	OpTypeAsin
	OpTypeAtan
	OpTypeCeil
	OpTypeConvertDType
	OpTypeCos
	OpTypeCosh
	OpTypeDiv
	OpTypeEqual
	OpTypeErf
	OpTypeExp
	OpTypeExpm1
	OpTypeFloor
	OpTypeGreaterOrEqual
	OpTypeGreaterThan
	OpTypeIsNaN
	OpTypeLessOrEqual
	OpTypeLessThan
	OpTypeLog
	OpTypeLog1p
	OpTypeLogicalNot
	OpTypeLogistic
	OpTypeMax
	OpTypeMin
	OpTypeMul
	OpTypeNeg
	OpTypeNotEqual
	OpTypePow
	OpTypeReduceLogicalAnd
	OpTypeReduceMax
	OpTypeReduceProduct
	OpTypeReduceSum
	OpTypeReduceWindow
	OpTypeReshape
	OpTypeRound
	OpTypeRsqrt
	OpTypeSign
	OpTypeSin
	OpTypeSinh
	OpTypeSqrt
	OpTypeSub
	OpTypeTan
	OpTypeTanh

	// OpTypeLast should always be kept the last, it is used as a counter/marker for OpType.
	OpTypeLast
)
