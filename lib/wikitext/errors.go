package wikitext

import "errors"

// Mention tagging rejections.
var (
	ErrNoMention        = errors.New("no mention of the target word")
	ErrAmbiguousMention = errors.New("more than one mention of the target word")
	ErrNoContext        = errors.New("no context around the mention")
)
