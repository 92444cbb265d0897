package errs

import "errors"

// Sentinel errors for conditions callers commonly compare against directly,
// named the way github.com/arloliu/mebo/errs names its sentinels.
var (
	ErrEmptyCoordinateLabels   = errors.New("csdm: labeled dimension requires at least 2 coordinate labels")
	ErrNonMonotonicCoordinates = errors.New("csdm: monotonic dimension coordinates are not strictly monotone")
	ErrDimensionalityMismatch  = errors.New("csdm: scalar unit does not share reduced dimensionality with quantity_name")
	ErrNonFiniteScalar         = errors.New("csdm: scalar value is not finite")
	ErrUnknownQuantityName     = errors.New("csdm: quantity_name does not map to a known quantity")

	ErrInvalidUnsignedIntegerType = errors.New("csdm: sparse_sampling unsigned_integer_type must be one of u8/u16/u32/u64")
	ErrInvalidSparseEncoding      = errors.New("csdm: sparse_sampling encoding must be \"none\" or \"base64\"")
	ErrSparseVertexCardinality    = errors.New("csdm: sparse_grid_vertexes entry cardinality does not match dimension_indexes count")

	ErrComponentCountMismatch = errors.New("csdm: components length does not match quantity_type's component count")
	ErrComponentLabelsMismatch = errors.New("csdm: component_labels length does not match components length")
	ErrComponentByteLenMismatch = errors.New("csdm: component buffers do not share an equal byte length")
	ErrUnknownQuantityTypeFamily = errors.New("csdm: quantity_type is not scalar/vector_N/pixel_N/matrix_R_C/symmetric_matrix_N")
	ErrMissingComponentsURL     = errors.New("csdm: external dependent variable requires a non-empty components_url")
	ErrUnexpectedComponentsURL  = errors.New("csdm: internal dependent variable must not carry components_url")
	ErrLastComponentRemoval     = errors.New("csdm: cannot remove the last remaining component")

	ErrGridProductMismatch     = errors.New("csdm: dependent variable size is incompatible with the dataset's dimension grid")
	ErrDimensionPrecedenceDup  = errors.New("csdm: dimension_precedence entries must be distinct")
	ErrDimensionPrecedenceBad  = errors.New("csdm: dimension_precedence entry is out of range")
	ErrNoDependentVariables    = errors.New("csdm: dataset must carry at least one dependent variable")

	ErrIntegerUnitConversion  = errors.New("csdm: convert_to_unit is not valid for integer element types")
	ErrCrossSectionAllDims    = errors.New("csdm: cross-section cannot fix every dimension")

	ErrExtensionMismatch = errors.New("csdm: file extension does not match the serialization mode")
	ErrIllegalDocument   = errors.New("csdm: document does not satisfy CSDM invariants")
)
