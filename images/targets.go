package images

import "github.com/pkg/errors"

// TargetName identifies a standard resize target used by the client.
type TargetName string

// Defines the named bounds the client-side media flows pass to the resizers.
const (
	// TargetAvatar bounds avatar uploads before the canonical JPEG encode.
	TargetAvatar TargetName = "avatar"
	// TargetThumbnailSmall is the conversation-list thumbnail tier.
	TargetThumbnailSmall TargetName = "thumbnail-small"
	// TargetThumbnailMedium is the message-bubble thumbnail tier.
	TargetThumbnailMedium TargetName = "thumbnail-medium"
	// TargetThumbnailLarge is the gallery thumbnail tier.
	TargetThumbnailLarge TargetName = "thumbnail-large"
	// TargetLinkPreview bounds images attached to link previews.
	TargetLinkPreview TargetName = "link-preview"
	// TargetAttachment bounds full-quality image attachment sends.
	TargetAttachment TargetName = "attachment"
)

// Target describes a named maximum-dimension bound in pixels.
type Target struct {
	Name               TargetName
	MaxDimensionPixels float64
}

// targets stores the defined targets keyed by name for O(1) lookups.
var targets = map[TargetName]Target{
	TargetAvatar:          {Name: TargetAvatar, MaxDimensionPixels: 1024},
	TargetThumbnailSmall:  {Name: TargetThumbnailSmall, MaxDimensionPixels: 200},
	TargetThumbnailMedium: {Name: TargetThumbnailMedium, MaxDimensionPixels: 450},
	TargetThumbnailLarge:  {Name: TargetThumbnailLarge, MaxDimensionPixels: 800},
	TargetLinkPreview:     {Name: TargetLinkPreview, MaxDimensionPixels: 1024},
	TargetAttachment:      {Name: TargetAttachment, MaxDimensionPixels: 4096},
}

// GetTargetByName retrieves a target by its name.
// It returns the Target and true if found, otherwise an empty Target and
// false. O(1) complexity due to map lookup.
func GetTargetByName(name TargetName) (Target, bool) {
	t, ok := targets[name]
	return t, ok
}

// GetAllTargets returns a slice of all defined resize targets.
// The order is not guaranteed. O(N) complexity.
func GetAllTargets() []Target {
	all := make([]Target, 0, len(targets))
	for _, t := range targets {
		all = append(all, t)
	}
	return all
}

// ResizeToTarget bounds img by the named standard target, in pixels.
func (n *Normalizer) ResizeToTarget(img Image, name TargetName) (Image, error) {
	t, ok := GetTargetByName(name)
	if !ok {
		return Image{}, errors.Errorf("unknown resize target: %s", name)
	}
	return n.ResizeToMaxDimensionPixels(img, t.MaxDimensionPixels)
}
