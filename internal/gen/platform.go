package gen

// PlatformProfile consolidates every per-platform setting used across
// content scoring, image sizing and video rendering.
type PlatformProfile struct {
	Name          string
	OptimalMinLen int
	OptimalMaxLen int
	Multiplier    float64 // text engagement multiplier
	VideoMult     float64 // video engagement multiplier
	ImageAspect   string
	VideoAspect   string
	VideoRes      string
	MaxChars      int
	HashtagLimit  int
	Style         string
}

var platformProfiles = map[string]PlatformProfile{
	"twitter": {
		Name:          "twitter",
		OptimalMinLen: 70,
		OptimalMaxLen: 140,
		Multiplier:    1.0,
		VideoMult:     1.0,
		ImageAspect:   "16:9",
		VideoAspect:   "16:9",
		VideoRes:      "1920x1080",
		MaxChars:      280,
		HashtagLimit:  2,
		Style:         "concise and engaging",
	},
	"linkedin": {
		Name:          "linkedin",
		OptimalMinLen: 200,
		OptimalMaxLen: 600,
		Multiplier:    0.8,
		VideoMult:     0.9,
		ImageAspect:   "4:5",
		VideoAspect:   "16:9",
		VideoRes:      "1920x1080",
		MaxChars:      3000,
		HashtagLimit:  5,
		Style:         "professional and informative",
	},
	"instagram": {
		Name:          "instagram",
		OptimalMinLen: 100,
		OptimalMaxLen: 300,
		Multiplier:    1.2,
		VideoMult:     1.4,
		ImageAspect:   "1:1",
		VideoAspect:   "9:16",
		VideoRes:      "1080x1920",
		MaxChars:      2200,
		HashtagLimit:  10,
		Style:         "visual and story-driven",
	},
	"facebook": {
		Name:          "facebook",
		OptimalMinLen: 80,
		OptimalMaxLen: 250,
		Multiplier:    0.9,
		VideoMult:     1.0,
		ImageAspect:   "1:1",
		VideoAspect:   "16:9",
		VideoRes:      "1920x1080",
		MaxChars:      63206,
		HashtagLimit:  3,
		Style:         "conversational and community-focused",
	},
	"tiktok": {
		Name:          "tiktok",
		OptimalMinLen: 50,
		OptimalMaxLen: 150,
		Multiplier:    1.3,
		VideoMult:     1.5,
		ImageAspect:   "9:16",
		VideoAspect:   "9:16",
		VideoRes:      "1080x1920",
		MaxChars:      2200,
		HashtagLimit:  5,
		Style:         "punchy and trend-aware",
	},
	"youtube": {
		Name:          "youtube",
		OptimalMinLen: 100,
		OptimalMaxLen: 500,
		Multiplier:    1.1,
		VideoMult:     1.2,
		ImageAspect:   "16:9",
		VideoAspect:   "16:9",
		VideoRes:      "1920x1080",
		MaxChars:      5000,
		HashtagLimit:  5,
		Style:         "descriptive and searchable",
	},
}

var defaultProfile = PlatformProfile{
	Name:          "default",
	OptimalMinLen: 80,
	OptimalMaxLen: 300,
	Multiplier:    1.0,
	VideoMult:     1.0,
	ImageAspect:   "1:1",
	VideoAspect:   "16:9",
	VideoRes:      "1920x1080",
	MaxChars:      2000,
	HashtagLimit:  3,
	Style:         "clear and engaging",
}

// ProfileFor returns the profile for a platform, falling back to a
// neutral default for platforms without a dedicated entry.
func ProfileFor(platform string) PlatformProfile {
	if p, ok := platformProfiles[platform]; ok {
		return p
	}
	p := defaultProfile
	p.Name = platform
	return p
}
