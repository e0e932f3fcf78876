// Package taxonomy defines the closed brand vocabulary for asset tagging:
// single-valued enumerations, multi-valued tag vocabularies, and the TagSet
// value that carries a complete classification.
package taxonomy

import (
	"encoding/json"
	"slices"
)

// AssetType classifies the kind of media file.
type AssetType string

// Valid asset types.
const (
	AssetPhoto         AssetType = "Photo"
	AssetVideo         AssetType = "Video"
	AssetIllustration  AssetType = "Illustration"
	AssetIcon          AssetType = "Icon"
	AssetTemplate      AssetType = "Template"
	AssetSellSheet     AssetType = "Sell Sheet"
	AssetSocialAsset   AssetType = "Social Asset"
	AssetPackagingFile AssetType = "Packaging File"
	AssetPresentation  AssetType = "Presentation"
	AssetDocument      AssetType = "Document"
	AssetOther         AssetType = "Other"
)

var assetTypes = []AssetType{
	AssetPhoto,
	AssetVideo,
	AssetIllustration,
	AssetIcon,
	AssetTemplate,
	AssetSellSheet,
	AssetSocialAsset,
	AssetPackagingFile,
	AssetPresentation,
	AssetDocument,
	AssetOther,
}

// AssetTypes returns the list of valid asset types.
func AssetTypes() []AssetType {
	return assetTypes
}

// ParseAssetType validates a string as a known asset type.
func ParseAssetType(s string) (AssetType, error) {
	v := AssetType(s)
	if !slices.Contains(assetTypes, v) {
		return "", ErrInvalidAssetType
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known asset type.
func (t *AssetType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseAssetType(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// PackFormat identifies the product packaging depicted in an asset.
type PackFormat string

// Valid pack formats.
const (
	Pack20ctCan       PackFormat = "20ct Can"
	Pack100ctMega     PackFormat = "100ct Mega Pack"
	PackBoth          PackFormat = "Both"
	PackNotApplicable PackFormat = "N/A"
)

var packFormats = []PackFormat{
	Pack20ctCan,
	Pack100ctMega,
	PackBoth,
	PackNotApplicable,
}

// PackFormats returns the list of valid pack formats.
func PackFormats() []PackFormat {
	return packFormats
}

// ParsePackFormat validates a string as a known pack format.
func ParsePackFormat(s string) (PackFormat, error) {
	v := PackFormat(s)
	if !slices.Contains(packFormats, v) {
		return "", ErrInvalidPackFormat
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known pack format.
func (f *PackFormat) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParsePackFormat(raw)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// UsageRights constrains where an asset may be published.
type UsageRights string

// Valid usage rights.
const (
	RightsUnlimitedInternal UsageRights = "Unlimited Internal"
	RightsApprovedExternal  UsageRights = "Approved External"
	RightsRestricted        UsageRights = "Restricted"
	RightsExpires           UsageRights = "Expires"
)

var usageRights = []UsageRights{
	RightsUnlimitedInternal,
	RightsApprovedExternal,
	RightsRestricted,
	RightsExpires,
}

// UsageRightsValues returns the list of valid usage rights.
func UsageRightsValues() []UsageRights {
	return usageRights
}

// ParseUsageRights validates a string as known usage rights.
func ParseUsageRights(s string) (UsageRights, error) {
	v := UsageRights(s)
	if !slices.Contains(usageRights, v) {
		return "", ErrInvalidUsageRights
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is known usage rights.
func (u *UsageRights) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseUsageRights(raw)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ReviewStatus tracks an asset through the human review workflow.
type ReviewStatus string

// Valid review statuses.
const (
	StatusPendingReview ReviewStatus = "Pending Review"
	StatusApproved      ReviewStatus = "Approved"
	StatusCorrected     ReviewStatus = "Corrected"
	StatusRejected      ReviewStatus = "Rejected"
	StatusAutoApproved  ReviewStatus = "Auto-Approved"
)

var reviewStatuses = []ReviewStatus{
	StatusPendingReview,
	StatusApproved,
	StatusCorrected,
	StatusRejected,
	StatusAutoApproved,
}

// ReviewStatuses returns the list of valid review statuses.
func ReviewStatuses() []ReviewStatus {
	return reviewStatuses
}

// ParseReviewStatus validates a string as a known review status.
func ParseReviewStatus(s string) (ReviewStatus, error) {
	v := ReviewStatus(s)
	if !slices.Contains(reviewStatuses, v) {
		return "", ErrInvalidReviewStatus
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known review status.
func (s *ReviewStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseReviewStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// TaggingMethod records how an asset's current tags were produced.
type TaggingMethod string

// Valid tagging methods.
const (
	MethodAISuggested    TaggingMethod = "AI-Suggested"
	MethodHumanReviewed  TaggingMethod = "Human-Reviewed"
	MethodHumanCorrected TaggingMethod = "Human-Corrected"
	MethodManual         TaggingMethod = "Manual"
)

var taggingMethods = []TaggingMethod{
	MethodAISuggested,
	MethodHumanReviewed,
	MethodHumanCorrected,
	MethodManual,
}

// TaggingMethods returns the list of valid tagging methods.
func TaggingMethods() []TaggingMethod {
	return taggingMethods
}

// ParseTaggingMethod validates a string as a known tagging method.
func ParseTaggingMethod(s string) (TaggingMethod, error) {
	v := TaggingMethod(s)
	if !slices.Contains(taggingMethods, v) {
		return "", ErrInvalidTaggingMethod
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known tagging method.
func (m *TaggingMethod) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseTaggingMethod(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// OperatingMode selects the confidence routing policy for new classifications.
type OperatingMode string

// Valid operating modes.
const (
	ModeCalibration     OperatingMode = "Calibration"
	ModeConfidenceBased OperatingMode = "Confidence-Based"
	ModeAutonomous      OperatingMode = "Autonomous"
)

var operatingModes = []OperatingMode{
	ModeCalibration,
	ModeConfidenceBased,
	ModeAutonomous,
}

// OperatingModes returns the list of valid operating modes.
func OperatingModes() []OperatingMode {
	return operatingModes
}

// ParseOperatingMode validates a string as a known operating mode.
func ParseOperatingMode(s string) (OperatingMode, error) {
	v := OperatingMode(s)
	if !slices.Contains(operatingModes, v) {
		return "", ErrInvalidOperatingMode
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known operating mode.
func (m *OperatingMode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseOperatingMode(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Multi-valued tag vocabularies. Fields drawing on these are sets:
// duplicates collapse and order is irrelevant.
var (
	ProductLines = []string{
		"FRE Core",
		"FRE LABS",
		"Corporate/TPB",
		"Partnership",
		"Non-Branded",
	}

	Flavors = []string{
		"Mint",
		"Wintergreen",
		"Sweet",
		"Lush",
		"Original",
		"Watermelon",
		"Multiple",
		"N/A",
	}

	NicotineStrengths = []string{
		"3mg",
		"6mg",
		"9mg",
		"12mg",
		"15mg",
		"Multiple",
		"N/A",
	}

	ContentThemes = []string{
		"Lifestyle",
		"Product Shot",
		"Packaging",
		"Retail/POS",
		"Event",
		"Data/Chart",
		"Partnership",
		"Behind-the-Scenes",
		"UGC",
		"Template/Layout",
	}

	Settings = []string{
		"Outdoor",
		"Urban",
		"Workplace",
		"Sports",
		"Nightlife",
		"Studio/Clean",
		"Retail Environment",
		"Event Venue",
		"N/A",
	}
)
