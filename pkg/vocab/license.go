package vocab

// License is an SPDX license identifier.
type License string

// Identifiers that come up often on published collections. The full
// recognized set lives in validLicenses.
const (
	LicenseApache20 License = "Apache-2.0"
	LicenseMIT      License = "MIT"
	LicenseBSD3     License = "BSD-3-Clause"
	LicenseCCBY40   License = "CC-BY-4.0"
	LicenseCCBYSA40 License = "CC-BY-SA-4.0"
	LicenseCC010    License = "CC0-1.0"
	LicensePDDL10   License = "PDDL-1.0"
	LicenseODbL10   License = "ODbL-1.0"
)

// validLicenses is the set of recognized SPDX identifiers.
var validLicenses = map[License]bool{
	"0BSD": true, "AAL": true, "Abstyles": true, "Adobe-2006": true,
	"Adobe-Glyph": true, "ADSL": true, "AFL-1.1": true, "AFL-1.2": true,
	"AFL-2.0": true, "AFL-2.1": true, "AFL-3.0": true, "Afmparse": true,
	"AGPL-1.0-only": true, "AGPL-1.0-or-later": true, "AGPL-3.0-only": true,
	"AGPL-3.0-or-later": true, "Aladdin": true, "AMDPLPA": true, "AML": true,
	"AMPAS": true, "ANTLR-PD": true, "Apache-1.0": true, "Apache-1.1": true,
	"Apache-2.0": true, "APAFML": true, "APL-1.0": true, "APSL-1.0": true,
	"APSL-1.1": true, "APSL-1.2": true, "APSL-2.0": true, "Artistic-1.0": true,
	"Artistic-1.0-cl8": true, "Artistic-1.0-Perl": true, "Artistic-2.0": true,
	"Bahyph": true, "Barr": true, "Beerware": true, "BitTorrent-1.0": true,
	"BitTorrent-1.1": true, "blessing": true, "BlueOak-1.0.0": true,
	"Borceux": true, "BSD-1-Clause": true, "BSD-2-Clause": true,
	"BSD-2-Clause-Patent": true, "BSD-2-Clause-Views": true,
	"BSD-3-Clause": true, "BSD-3-Clause-Attribution": true,
	"BSD-3-Clause-Clear": true, "BSD-3-Clause-LBNL": true,
	"BSD-3-Clause-Open-MPI": true, "BSD-4-Clause": true,
	"BSD-4-Clause-UC": true, "BSD-Protection": true, "BSD-Source-Code": true,
	"BSL-1.0": true, "CC-BY-1.0": true, "CC-BY-2.0": true, "CC-BY-2.5": true,
	"CC-BY-3.0": true, "CC-BY-4.0": true, "CC-BY-NC-1.0": true,
	"CC-BY-NC-4.0": true, "CC-BY-NC-ND-4.0": true, "CC-BY-NC-SA-4.0": true,
	"CC-BY-ND-4.0": true, "CC-BY-SA-1.0": true, "CC-BY-SA-2.0": true,
	"CC-BY-SA-3.0": true, "CC-BY-SA-4.0": true, "CC0-1.0": true,
	"CDDL-1.0": true, "CDDL-1.1": true, "CDLA-Permissive-1.0": true,
	"CDLA-Permissive-2.0": true, "CDLA-Sharing-1.0": true, "CECILL-2.1": true,
	"CERN-OHL-1.1": true, "ClArtistic": true, "CPAL-1.0": true,
	"CPL-1.0": true, "curl": true, "D-FSL-1.0": true, "DOC": true,
	"DSDP": true, "ECL-1.0": true, "ECL-2.0": true, "EFL-1.0": true,
	"EFL-2.0": true, "EPL-1.0": true, "EPL-2.0": true, "ErlPL-1.1": true,
	"EUDatagrid": true, "EUPL-1.0": true, "EUPL-1.1": true, "EUPL-1.2": true,
	"Fair": true, "FTL": true, "GFDL-1.3-only": true,
	"GFDL-1.3-or-later": true, "GPL-1.0-only": true, "GPL-1.0-or-later": true,
	"GPL-2.0-only": true, "GPL-2.0-or-later": true, "GPL-3.0-only": true,
	"GPL-3.0-or-later": true, "HPND": true, "IJG": true, "ImageMagick": true,
	"Imlib2": true, "Intel": true, "IPA": true, "IPL-1.0": true, "ISC": true,
	"JSON": true, "LGPL-2.0-only": true, "LGPL-2.0-or-later": true,
	"LGPL-2.1-only": true, "LGPL-2.1-or-later": true, "LGPL-3.0-only": true,
	"LGPL-3.0-or-later": true, "Libpng": true, "libtiff": true, "MirOS": true,
	"MIT": true, "MIT-0": true, "MIT-advertising": true, "MIT-CMU": true,
	"MIT-enna": true, "MIT-feh": true, "MITNFA": true, "Motosoto": true,
	"MPL-1.0": true, "MPL-1.1": true, "MPL-2.0": true, "MS-PL": true,
	"MS-RL": true, "MulanPSL-2.0": true, "Multics": true, "NASA-1.3": true,
	"Naumen": true, "NBPL-1.0": true, "NCSA": true, "NGPL": true,
	"NOSL": true, "Noweb": true, "NPL-1.0": true, "NPL-1.1": true,
	"NTP": true, "OCLC-2.0": true, "ODbL-1.0": true, "ODC-By-1.0": true,
	"OFL-1.0": true, "OFL-1.1": true, "OGL-Canada-2.0": true,
	"OGL-UK-1.0": true, "OGL-UK-2.0": true, "OGL-UK-3.0": true,
	"OLDAP-2.8": true, "OML": true, "OpenSSL": true, "OPL-1.0": true,
	"OSL-1.0": true, "OSL-2.0": true, "OSL-2.1": true, "OSL-3.0": true,
	"PDDL-1.0": true, "PHP-3.0": true, "PHP-3.01": true, "PostgreSQL": true,
	"PSF-2.0": true, "Python-2.0": true, "QPL-1.0": true, "Rdisc": true,
	"RPL-1.1": true, "RPL-1.5": true, "RPSL-1.0": true, "Ruby": true,
	"SAX-PD": true, "Sendmail": true, "SGI-B-2.0": true, "Sleepycat": true,
	"SMLNJ": true, "SPL-1.0": true, "SugarCRM-1.1.3": true, "TCL": true,
	"TMate": true, "TORQUE-1.1": true, "TOSL": true,
	"Unicode-DFS-2016": true, "Unlicense": true, "UPL-1.0": true,
	"Vim": true, "VSL-1.0": true, "W3C": true, "Watcom-1.0": true,
	"Wsuipa": true, "WTFPL": true, "X11": true, "Xerox": true,
	"XFree86-1.1": true, "xinetd": true, "Xnet": true, "xpp": true,
	"Zed": true, "Zend-2.0": true, "Zlib": true,
	"zlib-acknowledgement": true, "ZPL-1.1": true, "ZPL-2.0": true,
	"ZPL-2.1": true,
}

// LookupLicense returns the license identifier for a raw SPDX token.
func LookupLicense(token string) (License, error) {
	l := License(token)
	if !validLicenses[l] {
		return "", &UnknownValueError{Vocabulary: "License", Value: token}
	}
	return l, nil
}
