package taxonomy

import "errors"

var (
	// ErrInvalidAssetType indicates a value outside the asset type vocabulary.
	ErrInvalidAssetType = errors.New("invalid asset type")
	// ErrInvalidPackFormat indicates a value outside the pack format vocabulary.
	ErrInvalidPackFormat = errors.New("invalid pack format")
	// ErrInvalidUsageRights indicates a value outside the usage rights vocabulary.
	ErrInvalidUsageRights = errors.New("invalid usage rights")
	// ErrInvalidReviewStatus indicates a value outside the review status vocabulary.
	ErrInvalidReviewStatus = errors.New("invalid review status")
	// ErrInvalidTaggingMethod indicates a value outside the tagging method vocabulary.
	ErrInvalidTaggingMethod = errors.New("invalid tagging method")
	// ErrInvalidOperatingMode indicates a value outside the operating mode vocabulary.
	ErrInvalidOperatingMode = errors.New("invalid operating mode")
	// ErrInvalidTagValue indicates a multi-valued tag member outside its vocabulary.
	ErrInvalidTagValue = errors.New("invalid tag value")
)
