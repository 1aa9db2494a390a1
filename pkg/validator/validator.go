package validator

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GitHub logins: alphanumerics and single hyphens, no leading or trailing hyphen, at most 39 chars.
var (
	githubUsername = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9]){0,38}$`)
	issueNumber    = regexp.MustCompile(`^[1-9][0-9]*$`)
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("github_username", func(fl validator.FieldLevel) bool {
		return githubUsername.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("github_issue_path", func(fl validator.FieldLevel) bool {
		return isIssuePath(fl.Field().String())
	})
	return v
}

func IsGithubUsername(s string) bool {
	return validate.Var(s, "required,github_username") == nil
}

// IsIssueURL reports whether s looks like https://github.com/<owner>/<repo>/issues/<n>.
func IsIssueURL(s string) bool {
	return validate.Var(s, "required,url,startswith=https://github.com/,github_issue_path") == nil
}

func isIssuePath(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Host != "github.com" {
		return false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 || parts[0] == "" || parts[1] == "" || parts[2] != "issues" {
		return false
	}
	return issueNumber.MatchString(parts[3])
}
