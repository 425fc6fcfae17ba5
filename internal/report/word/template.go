package word

import (
	"archive/zip"
	"os"
)

// buildTemplateDocx writes a minimal OOXML Word document to path, with
// {{Date}}, {{TotalPackages}}, {{CyclicCount}} and {{Content}} placeholders
// for the docx library's text Replace to fill in. Grounded on
// cmd/gentemplate/main.go's package shape (Content_Types, package rels,
// document.xml), built directly at export time instead of shipping a
// pre-built template.docx binary asset.
func buildTemplateDocx(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := zip.NewWriter(f)

	ct, err := w.Create("[Content_Types].xml")
	if err != nil {
		return err
	}
	if _, err := ct.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`)); err != nil {
		return err
	}

	rels, err := w.Create("_rels/.rels")
	if err != nil {
		return err
	}
	if _, err := rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`)); err != nil {
		return err
	}

	docRels, err := w.Create("word/_rels/document.xml.rels")
	if err != nil {
		return err
	}
	if _, err := docRels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`)); err != nil {
		return err
	}

	doc, err := w.Create("word/document.xml")
	if err != nil {
		return err
	}
	if _, err := doc.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Package Dependency Report</w:t></w:r></w:p>
<w:p><w:r><w:t>Date: {{Date}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Total Packages: {{TotalPackages}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Packages in a Cycle: {{CyclicCount}}</w:t></w:r></w:p>
<w:p><w:r><w:t>{{Content}}</w:t></w:r></w:p>
</w:body>
</w:document>`)); err != nil {
		return err
	}

	return w.Close()
}
