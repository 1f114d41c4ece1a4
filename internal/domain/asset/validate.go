package asset

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// platformLimits holds the character budget per target platform.
var platformLimits = map[string]int{
	"twitter":   280,
	"instagram": 2200,
	"facebook":  2000,
	"linkedin":  3000,
	"universal": 500,
}

var adCopyCTAs = []string{"visit", "book", "call", "shop", "learn", "contact"}

var linkedinProfessionalWords = []string{"insight", "strategy", "professional", "industry", "expertise"}

// ValidateForPlatform checks content against platform conventions. The result
// never blocks storage; warnings are attached to the asset's metadata.
func ValidateForPlatform(content, platform, assetType string) ValidationResult {
	warnings := []string{}
	charCount := utf8.RuneCountInString(content)

	limit, ok := platformLimits[platform]
	if !ok {
		limit = platformLimits["universal"]
	}

	if charCount > limit {
		warnings = append(warnings, fmt.Sprintf("Content exceeds %s character limit (%d/%d)", platform, charCount, limit))
	}

	if assetType == "slogan" && charCount > 50 {
		warnings = append(warnings, "Slogan should be under 50 characters for memorability")
	}

	if assetType == "ad_copy" && !containsAny(content, adCopyCTAs) {
		warnings = append(warnings, "Ad copy should include a clear call-to-action")
	}

	if (platform == "instagram" || platform == "twitter") && !strings.Contains(content, "#") {
		warnings = append(warnings, fmt.Sprintf("%s content typically benefits from hashtags", titleCase(platform)))
	}

	if platform == "linkedin" && assetType == "social_post" && !containsAny(content, linkedinProfessionalWords) {
		warnings = append(warnings, "LinkedIn content should emphasize professional value")
	}

	return ValidationResult{
		Valid:          len(warnings) == 0,
		Warnings:       warnings,
		CharacterCount: charCount,
		PlatformLimit:  limit,
	}
}

func containsAny(content string, needles []string) bool {
	lower := strings.ToLower(content)
	for _, needle := range needles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
