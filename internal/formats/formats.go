// Package formats enumerates the supported marketing output formats.
package formats

// Format identifies one of the supported marketing-content output formats.
type Format string

const (
	TikTokScript     Format = "tiktok_script"
	YouTubeShorts    Format = "youtube_shorts"
	InstagramCaption Format = "instagram_caption"
	TwitterPost      Format = "twitter_post"
	FacebookPost     Format = "facebook_post"
	EmailMarketing   Format = "email_marketing"
	SMSMessage       Format = "sms_message"
	FlyerText        Format = "flyer_text"
	BannerAd         Format = "banner_ad"
	PrintAd          Format = "print_ad"
	LinkedInPost     Format = "linkedin_post"
	YouTubeAd        Format = "youtube_ad"
	GoogleAd         Format = "google_ad"
)

// all lists every supported format in stable display order.
var all = []Format{
	TikTokScript,
	YouTubeShorts,
	InstagramCaption,
	TwitterPost,
	FacebookPost,
	EmailMarketing,
	SMSMessage,
	FlyerText,
	BannerAd,
	PrintAd,
	LinkedInPost,
	YouTubeAd,
	GoogleAd,
}

var labels = map[Format]string{
	TikTokScript:     "TikTok/Reels Script",
	YouTubeShorts:    "YouTube Shorts Script",
	InstagramCaption: "Instagram Caption",
	TwitterPost:      "Twitter/X Post",
	FacebookPost:     "Facebook Post",
	EmailMarketing:   "Email Marketing",
	SMSMessage:       "SMS/WhatsApp Message",
	FlyerText:        "Flyer/Poster Text",
	BannerAd:         "Banner Ad Copy",
	PrintAd:          "Print Ad Copy",
	LinkedInPost:     "LinkedIn Post",
	YouTubeAd:        "YouTube Video Ad",
	GoogleAd:         "Google Search Ad",
}

var descriptions = map[Format]string{
	TikTokScript:     "15-60 second viral video script with hook",
	YouTubeShorts:    "60-second YouTube Shorts script",
	InstagramCaption: "Engaging caption with hashtags",
	TwitterPost:      "Concise 280-character post",
	FacebookPost:     "Community-focused post with CTA",
	EmailMarketing:   "Subject line + body copy",
	SMSMessage:       "160-character text message",
	FlyerText:        "Headline + body for print flyers",
	BannerAd:         "Short attention-grabbing banner text",
	PrintAd:          "Full print advertisement copy",
	LinkedInPost:     "Professional thought leadership post",
	YouTubeAd:        "15-30 second pre-roll ad script",
	GoogleAd:         "Headline + description for search ads",
}

// All returns every supported format in stable order.
func All() []Format {
	out := make([]Format, len(all))
	copy(out, all)
	return out
}

// IsKnown reports whether the given identifier is a supported format.
func IsKnown(id string) bool {
	_, ok := labels[Format(id)]
	return ok
}

// Label returns the human-readable label for a format, or the raw identifier
// when the format is unknown.
func Label(f Format) string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// Description returns a one-line description of what the format produces.
func Description(f Format) string {
	return descriptions[f]
}
