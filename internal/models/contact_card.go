package models

import "strings"

const crlf = "\r\n"

var vcardTextEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// Values written verbatim must stay on their own line
var lineBreakStripper = strings.NewReplacer("\r", "", "\n", "")

// ContactCard renders a vCard 3.0 for the record. Line order is fixed because
// contact-import tools are picky about it; TEL is only written when a phone is set.
func ContactCard(r *EmployeeRecord, site Site) string {
	var b strings.Builder

	line := func(s string) {
		b.WriteString(s)
		b.WriteString(crlf)
	}

	line("BEGIN:VCARD")
	line("VERSION:3.0")
	line("FN:" + escapeText(r.DisplayName()))
	line("N:" + escapeText(r.LastName) + ";" + escapeText(r.FirstName) + ";;;")
	line("TITLE:" + escapeText(r.Title))
	line("ORG:" + escapeText(site.Organization))
	line("EMAIL:" + singleLine(r.Email))
	if r.HasPhone() {
		line("TEL:" + singleLine(*r.Phone))
	}
	line("URL:" + site.ProfileURL(r.Slug))
	line("END:VCARD")

	return b.String()
}

// ContactCardDownloadName is the file name offered when downloading a card from the profile view
func ContactCardDownloadName(slug string) string {
	return slug + ContactCardExtension
}

// EmployeeCardDownloadName is the file name of the packaged archive
func EmployeeCardDownloadName(slug string) string {
	return slug + EmployeeCardSuffix + EmployeeCardExtension
}

func escapeText(s string) string {
	return vcardTextEscaper.Replace(s)
}

func singleLine(s string) string {
	return lineBreakStripper.Replace(s)
}
