// Package diff describes how a post's text changed on edit.
package diff

import "github.com/sergi/go-diff/diffmatchpatch"

var dmp *diffmatchpatch.DiffMatchPatch

func init() {
	dmp = diffmatchpatch.New()
}

// Patch returns the textual patch turning before into after, or "" when they are equal.
func Patch(before, after string) string {
	if before == after {
		return ""
	}
	diffs := dmp.DiffMain(before, after, false)
	return dmp.PatchToText(dmp.PatchMake(diffs))
}

// Changes counts inserted and deleted runes between before and after.
func Changes(before, after string) (inserted, deleted int) {
	for _, d := range dmp.DiffMain(before, after, false) {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += n
		case diffmatchpatch.DiffDelete:
			deleted += n
		}
	}
	return
}
