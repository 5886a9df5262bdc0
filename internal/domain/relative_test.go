package domain_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"dategen/internal/domain"
	"dategen/internal/domain/entities"
)

func TestRewriteRelativePatterns(t *testing.T) {
	t.Parallel()

	t.Run("rewrites top-level templates in place", func(t *testing.T) {
		t.Parallel()
		templates := []any{"in {0} days", "{0} days from now {0}", "tomorrow", entities.Scalar("1")}
		r := rec(
			"name", "en",
			"relative-type-regex", rec("in \\1 day", templates),
		)

		domain.RewriteRelativePatterns(r)

		assert.Equal(t, []any{
			`in (\d+) days`,
			`(\d+) days from now (\d+)`,
			"tomorrow",
			entities.Scalar("1"),
		}, templates)
	})

	t.Run("rewrites locale specific templates", func(t *testing.T) {
		t.Parallel()
		templates := []any{"dans {0} jours"}
		r := rec("locale_specific", rec(
			"fr-CA", rec("relative-type-regex", rec("in \\1 day", templates)),
			"fr-CH", rec("name", "fr-CH"),
			"broken", "not a mapping",
		))

		domain.RewriteRelativePatterns(r)

		assert.Equal(t, []any{`dans (\d+) jours`}, templates)
	})

	t.Run("leaves other keys alone", func(t *testing.T) {
		t.Parallel()
		other := []any{"{0}"}
		r := rec("relative-type", rec("in \\1 day", other), "relative-type-regex", "scalar")

		domain.RewriteRelativePatterns(r)

		assert.Equal(t, []any{"{0}"}, other)
	})

	t.Run("rewritten template matches digits", func(t *testing.T) {
		t.Parallel()
		templates := []any{"il y a {0} heures"}
		domain.RewriteRelativePatterns(rec("relative-type-regex", rec("\\1 hour ago", templates)))

		re := regexp.MustCompile(templates[0].(string))
		assert.Equal(t, []string{"il y a 12 heures", "12"}, re.FindStringSubmatch("il y a 12 heures"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		templates := []any{"in {0} weeks"}
		r := rec("relative-type-regex", rec("in \\1 week", templates))
		domain.RewriteRelativePatterns(r)
		domain.RewriteRelativePatterns(r)
		assert.Equal(t, []any{`in (\d+) weeks`}, templates)
	})
}
