package nodefmt

import (
	"regexp"
	"strings"

	"github.com/outline-format/go-outline/debug"
)

// ExtractTitleData inverts the title template against an edited title
// string, writing each captured value into data in stored form. It
// reports whether extraction succeeded; on failure data is unchanged.
//
// When the template does not match but its only literal content is
// whitespace, the whole title is assigned to the first field and the
// remaining fields are cleared. Free-form titles over a single field
// stay editable that way.
func (nf *NodeFormat) ExtractTitleData(title string, data map[string]string) bool {
	var names []string
	var pattern, seps strings.Builder
	pattern.WriteString("^")
	for _, seg := range nf.titleLine {
		if seg.isField() {
			names = append(names, seg.fieldName)
			pattern.WriteString("(.*)")
		} else {
			pattern.WriteString(regexp.QuoteMeta(seg.text))
			seps.WriteString(seg.text)
		}
	}
	pattern.WriteString("$")
	re := regexp.MustCompile(pattern.String())

	// stage all conversions before touching data, so a validation
	// failure cannot leave a partial write behind
	staged := make(map[string]string, len(names))
	if m := re.FindStringSubmatch(title); m != nil {
		for i, name := range names {
			stored, err := nf.fields[name].StoredTextFromTitle(m[i+1])
			if err != nil {
				if debug.Extract() {
					debug.Logf("extract: field %q rejects %q: %v\n", name, m[i+1], err)
				}
				return false
			}
			staged[name] = stored
		}
	} else if strings.TrimSpace(seps.String()) == "" && len(names) > 0 {
		stored, err := nf.fields[names[0]].StoredTextFromTitle(title)
		if err != nil {
			if debug.Extract() {
				debug.Logf("extract: field %q rejects %q: %v\n", names[0], title, err)
			}
			return false
		}
		staged[names[0]] = stored
		for _, name := range names[1:] {
			staged[name] = ""
		}
	} else {
		if debug.Extract() {
			debug.Logf("extract: %q does not match %q\n", title, nf.TitleLineText())
		}
		return false
	}
	for k, v := range staged {
		data[k] = v
	}
	return true
}
