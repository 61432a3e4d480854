package codegen

import "testing"

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"user", "User"},
		{"user_profile", "UserProfile"},
		{"user-profile", "UserProfile"},
		{"userProfile", "UserProfile"},
		{"UserProfile", "UserProfile"},
		{"blog_post_tag", "BlogPostTag"},
		{"x", "X"},
	}

	for _, tt := range tests {
		if got := ToPascalCase(tt.in); got != tt.want {
			t.Errorf("ToPascalCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToPascalCaseIdempotent(t *testing.T) {
	inputs := []string{"", "user", "user_profile", "userProfile", "UserProfile", "HTTPServer"}
	for _, in := range inputs {
		once := ToPascalCase(in)
		twice := ToPascalCase(once)
		if once != twice {
			t.Errorf("ToPascalCase not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"user", "user"},
		{"User", "user"},
		{"UserProfile", "user_profile"},
		{"userProfile", "user_profile"},
		{"HTTPServer", "http_server"},
		{"blogPostTag", "blog_post_tag"},
	}

	for _, tt := range tests {
		if got := ToSnakeCase(tt.in); got != tt.want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
