package entity

import (
	"fmt"

	"pressroom/internal/utils/text"
)

// MaxShortTextLength is the character limit for titles and author names.
const MaxShortTextLength = 255

// ValidateArticle checks the fields of a new article.
// Every failing field is reported; nil means the article may be stored.
// A field listed in mismatched (a value of the wrong type) is reported as
// such and not checked further.
func ValidateArticle(title, content string, mismatched ...*ValidationError) error {
	var errs ValidationErrors
	errs = check(errs, mismatched, "title", title, appendShortText)
	errs = check(errs, mismatched, "content", content, appendRequired)
	return errs.OrNil()
}

// ValidateComment checks the fields of a new comment.
// The parent article is resolved separately by the caller.
func ValidateComment(authorName, content string, mismatched ...*ValidationError) error {
	var errs ValidationErrors
	errs = check(errs, mismatched, "author_name", authorName, appendShortText)
	errs = check(errs, mismatched, "content", content, appendRequired)
	return errs.OrNil()
}

type fieldRule func(errs ValidationErrors, field, value string) ValidationErrors

func check(errs ValidationErrors, mismatched ValidationErrors, field, value string, rule fieldRule) ValidationErrors {
	if fe := mismatched.For(field); fe != nil {
		return append(errs, fe)
	}
	return rule(errs, field, value)
}

func appendRequired(errs ValidationErrors, field, value string) ValidationErrors {
	if text.IsBlank(value) {
		return append(errs, &ValidationError{
			Field:   field,
			Rule:    RuleRequired,
			Message: fmt.Sprintf("%s is required", field),
		})
	}
	return errs
}

func appendShortText(errs ValidationErrors, field, value string) ValidationErrors {
	if text.IsBlank(value) {
		return appendRequired(errs, field, value)
	}
	if text.CountRunes(value) > MaxShortTextLength {
		return append(errs, &ValidationError{
			Field:   field,
			Rule:    RuleMax,
			Message: fmt.Sprintf("%s must not exceed %d characters", field, MaxShortTextLength),
		})
	}
	return errs
}
