package swift

import (
	"fmt"
	"os"

	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/xsd"
)

// ValidatePain001 runs the two-stage validation of an XML document.
//
// Stage 1 parses the text; a document that cannot be parsed yields
// valid=false with a single issue describing the parse failure and no stage
// 2. Stage 2 validates against the XSD at schemaPath; every schema violation
// becomes one issue.
//
// A missing or unreadable schema is an operator problem, not a property of
// the document: it comes back as a *SchemaNotFoundError. An empty schemaPath
// is treated conservatively as valid=false with an explanatory issue rather
// than skipping validation.
func ValidatePain001(xmlText, schemaPath string) (bool, []string, error) {
	doc, err := libxml2.ParseString(xmlText)
	if err != nil {
		return false, []string{fmt.Sprintf("document is not well-formed XML: %v", err)}, nil
	}
	defer doc.Free()

	if schemaPath == "" {
		return false, []string{"no schema supplied for validation"}, nil
	}

	buf, err := os.ReadFile(schemaPath)
	if err != nil {
		return false, nil, &SchemaNotFoundError{Path: schemaPath, Err: err}
	}
	schema, err := xsd.Parse(buf)
	if err != nil {
		return false, nil, &SchemaNotFoundError{Path: schemaPath, Err: err}
	}
	defer schema.Free()

	if err := schema.Validate(doc); err != nil {
		var issues []string
		if sve, ok := err.(xsd.SchemaValidationError); ok {
			for _, ve := range sve.Errors() {
				issues = append(issues, ve.Error())
			}
		}
		if len(issues) == 0 {
			issues = append(issues, err.Error())
		}
		return false, issues, nil
	}

	return true, nil, nil
}
