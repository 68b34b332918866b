package validate

import (
	"errors"
	"net/url"
	"strings"
)

// SignUpForm reports every empty field at once. Fields are checked after trimming.
func SignUpForm(name, email, password string) error {
	var errs = []error{}

	errs = append(errs, Username(name))

	errs = append(errs, Email(email))

	errs = append(errs, Password(password))

	return errors.Join(errs...)
}

func Password(password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("empty password")
	}
	return nil
}

func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("empty email")
	}
	return nil
}

func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("empty name")
	}
	return nil
}

// Post requires text or an image.
func Post(content, image string) error {
	if strings.TrimSpace(content) == "" && strings.TrimSpace(image) == "" {
		return errors.New("add text or image")
	}
	return nil
}

// Image returns the trimmed image if it is an http(s) URL or a data URI, and "" otherwise.
func Image(image string) string {
	image = strings.TrimSpace(image)
	if len(image) >= 5 && strings.EqualFold(image[:5], "data:") {
		return image
	}

	u, err := url.Parse(image)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return image
}
