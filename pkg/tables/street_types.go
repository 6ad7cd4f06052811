// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package tables

// streetTypes maps street suffix spellings to the USPS Publication 28 abbreviation.
var streetTypes = []ConversionEntry{
	{"ALLEE", "ALY"},
	{"ALLEY", "ALY"},
	{"ALLY", "ALY"},
	{"ALY", "ALY"},
	{"ANEX", "ANX"},
	{"ANNEX", "ANX"},
	{"ANNX", "ANX"},
	{"ANX", "ANX"},
	{"ARCADE", "ARC"},
	{"ARC", "ARC"},
	{"AVENUE", "AVE"},
	{"AVENU", "AVE"},
	{"AVEN", "AVE"},
	{"AVE", "AVE"},
	{"AVNUE", "AVE"},
	{"AVN", "AVE"},
	{"AV", "AVE"},
	{"BAYOO", "BYU"},
	{"BAYOU", "BYU"},
	{"BCH", "BCH"},
	{"BEACH", "BCH"},
	{"BEND", "BND"},
	{"BGS", "BGS"},
	{"BG", "BG"},
	{"BLFS", "BLFS"},
	{"BLF", "BLF"},
	{"BLUFFS", "BLFS"},
	{"BLUFF", "BLF"},
	{"BLUF", "BLF"},
	{"BLVD", "BLVD"},
	{"BND", "BND"},
	{"BOTTM", "BTM"},
	{"BOTTOM", "BTM"},
	{"BOT", "BTM"},
	{"BOULEVARD", "BLVD"},
	{"BOULV", "BLVD"},
	{"BOUL", "BLVD"},
	{"BRANCH", "BR"},
	{"BRDGE", "BRG"},
	{"BRG", "BRG"},
	{"BRIDGE", "BRG"},
	{"BRKS", "BRKS"},
	{"BRK", "BRK"},
	{"BRNCH", "BR"},
	{"BROOKS", "BRKS"},
	{"BROOK", "BRK"},
	{"BR", "BR"},
	{"BTM", "BTM"},
	{"BURGS", "BGS"},
	{"BURG", "BG"},
	{"BYPASS", "BYP"},
	{"BYPAS", "BYP"},
	{"BYPA", "BYP"},
	{"BYPS", "BYP"},
	{"BYP", "BYP"},
	{"BYU", "BYU"},
	{"CAMP", "CP"},
	{"CANYN", "CYN"},
	{"CANYON", "CYN"},
	{"CAPE", "CPE"},
	{"CAUSEWAY", "CSWY"},
	{"CAUSWA", "CSWY"},
	{"CENTERS", "CTRS"},
	{"CENTER", "CTR"},
	{"CENTRE", "CTR"},
	{"CENTR", "CTR"},
	{"CENT", "CTR"},
	{"CEN", "CTR"},
	{"CIRCLES", "CIRS"},
	{"CIRCLE", "CIR"},
	{"CIRCL", "CIR"},
	{"CIRC", "CIR"},
	{"CIRS", "CIRS"},
	{"CIR", "CIR"},
	{"CLB", "CLB"},
	{"CLFS", "CLFS"},
	{"CLF", "CLF"},
	{"CLIFFS", "CLFS"},
	{"CLIFF", "CLF"},
	{"CLUB", "CLB"},
	{"CMNS", "CMNS"},
	{"CMN", "CMN"},
	{"CMP", "CP"},
	{"CNTER", "CTR"},
	{"CNTR", "CTR"},
	{"CNYN", "CYN"},
	{"COMMONS", "CMNS"},
	{"COMMON", "CMN"},
	{"CORNERS", "CORS"},
	{"CORNER", "COR"},
	{"CORS", "CORS"},
	{"COR", "COR"},
	{"COURSE", "CRSE"},
	{"COURTS", "CTS"},
	{"COURT", "CT"},
	{"COVES", "CVS"},
	{"COVE", "CV"},
	{"CPE", "CPE"},
	{"CP", "CP"},
	{"CRCLE", "CIR"},
	{"CRCL", "CIR"},
	{"CREEK", "CRK"},
	{"CRESCENT", "CRES"},
	{"CREST", "CRST"},
	{"CRES", "CRES"},
	{"CRK", "CRK"},
	{"CROSSING", "XING"},
	{"CROSSROADS", "XRDS"},
	{"CROSSROAD", "XRD"},
	{"CRSENT", "CRES"},
	{"CRSE", "CRSE"},
	{"CRSNT", "CRES"},
	{"CRSSNG", "XING"},
	{"CRST", "CRST"},
	{"CSWY", "CSWY"},
	{"CTRS", "CTRS"},
	{"CTR", "CTR"},
	{"CTS", "CTS"},
	{"CT", "CT"},
	{"CURVE", "CURV"},
	{"CURV", "CURV"},
	{"CVS", "CVS"},
	{"CV", "CV"},
	{"CYN", "CYN"},
	{"DALE", "DL"},
	{"DAM", "DM"},
	{"DIVIDE", "DV"},
	{"DIV", "DV"},
	{"DL", "DL"},
	{"DM", "DM"},
	{"DRIVES", "DRS"},
	{"DRIVE", "DR"},
	{"DRIV", "DR"},
	{"DRS", "DRS"},
	{"DRV", "DR"},
	{"DR", "DR"},
	{"DVD", "DV"},
	{"DV", "DV"},
	{"ESTATES", "ESTS"},
	{"ESTATE", "EST"},
	{"ESTS", "ESTS"},
	{"EST", "EST"},
	{"EXPRESSWAY", "EXPY"},
	{"EXPRESS", "EXPY"},
	{"EXPR", "EXPY"},
	{"EXPW", "EXPY"},
	{"EXPY", "EXPY"},
	{"EXP", "EXPY"},
	{"EXTENSIONS", "EXTS"},
	{"EXTENSION", "EXT"},
	{"EXTNSN", "EXT"},
	{"EXTN", "EXT"},
	{"EXTS", "EXTS"},
	{"EXT", "EXT"},
	{"FALLS", "FLS"},
	{"FALL", "FALL"},
	{"FERRY", "FRY"},
	{"FIELDS", "FLDS"},
	{"FIELD", "FLD"},
	{"FLATS", "FLTS"},
	{"FLAT", "FLT"},
	{"FLDS", "FLDS"},
	{"FLD", "FLD"},
	{"FLS", "FLS"},
	{"FLTS", "FLTS"},
	{"FLT", "FLT"},
	{"FORDS", "FRDS"},
	{"FORD", "FRD"},
	{"FORESTS", "FRST"},
	{"FOREST", "FRST"},
	{"FORGES", "FRGS"},
	{"FORGE", "FRG"},
	{"FORG", "FRG"},
	{"FORKS", "FRKS"},
	{"FORK", "FRK"},
	{"FORT", "FT"},
	{"FRDS", "FRDS"},
	{"FRD", "FRD"},
	{"FREEWAY", "FWY"},
	{"FREEWY", "FWY"},
	{"FRGS", "FRGS"},
	{"FRG", "FRG"},
	{"FRKS", "FRKS"},
	{"FRK", "FRK"},
	{"FRRY", "FRY"},
	{"FRST", "FRST"},
	{"FRT", "FT"},
	{"FRWAY", "FWY"},
	{"FRWY", "FWY"},
	{"FRY", "FRY"},
	{"FT", "FT"},
	{"FWY", "FWY"},
	{"GARDENS", "GDNS"},
	{"GARDEN", "GDN"},
	{"GARDN", "GDN"},
	{"GATEWAY", "GTWY"},
	{"GATEWY", "GTWY"},
	{"GATWAY", "GTWY"},
	{"GDNS", "GDNS"},
	{"GDN", "GDN"},
	{"GLENS", "GLNS"},
	{"GLEN", "GLN"},
	{"GLNS", "GLNS"},
	{"GLN", "GLN"},
	{"GRDEN", "GDN"},
	{"GRDNS", "GDNS"},
	{"GRDN", "GDN"},
	{"GREENS", "GRNS"},
	{"GREEN", "GRN"},
	{"GRNS", "GRNS"},
	{"GRN", "GRN"},
	{"GROVES", "GRVS"},
	{"GROVE", "GRV"},
	{"GROV", "GRV"},
	{"GRVS", "GRVS"},
	{"GRV", "GRV"},
	{"GTWAY", "GTWY"},
	{"GTWY", "GTWY"},
	{"HARBORS", "HBRS"},
	{"HARBOR", "HBR"},
	{"HARBR", "HBR"},
	{"HARB", "HBR"},
	{"HAVEN", "HVN"},
	{"HBRS", "HBRS"},
	{"HBR", "HBR"},
	{"HEIGHTS", "HTS"},
	{"HIGHWAY", "HWY"},
	{"HIGHWY", "HWY"},
	{"HILLS", "HLS"},
	{"HILL", "HL"},
	{"HIWAY", "HWY"},
	{"HIWY", "HWY"},
	{"HLLW", "HOLW"},
	{"HLS", "HLS"},
	{"HL", "HL"},
	{"HOLLOWS", "HOLW"},
	{"HOLLOW", "HOLW"},
	{"HOLWS", "HOLW"},
	{"HOLW", "HOLW"},
	{"HRBOR", "HBR"},
	{"HTS", "HTS"},
	{"HT", "HTS"},
	{"HVN", "HVN"},
	{"HWAY", "HWY"},
	{"HWY", "HWY"},
	{"INLET", "INLT"},
	{"INLT", "INLT"},
	{"ISLANDS", "ISS"},
	{"ISLAND", "IS"},
	{"ISLES", "ISLE"},
	{"ISLE", "ISLE"},
	{"ISLNDS", "ISS"},
	{"ISLND", "IS"},
	{"ISS", "ISS"},
	{"IS", "IS"},
	{"JCTION", "JCT"},
	{"JCTNS", "JCTS"},
	{"JCTN", "JCT"},
	{"JCTS", "JCTS"},
	{"JCT", "JCT"},
	{"JUNCTIONS", "JCTS"},
	{"JUNCTION", "JCT"},
	{"JUNCTN", "JCT"},
	{"JUNCTON", "JCT"},
	{"KEYS", "KYS"},
	{"KEY", "KY"},
	{"KNLS", "KNLS"},
	{"KNL", "KNL"},
	{"KNOLLS", "KNLS"},
	{"KNOLL", "KNL"},
	{"KNOL", "KNL"},
	{"KYS", "KYS"},
	{"KY", "KY"},
	{"LAKES", "LKS"},
	{"LAKE", "LK"},
	{"LANDING", "LNDG"},
	{"LAND", "LAND"},
	{"LANE", "LN"},
	{"LCKS", "LCKS"},
	{"LCK", "LCK"},
	{"LDGE", "LDG"},
	{"LDG", "LDG"},
	{"LF", "LF"},
	{"LGTS", "LGTS"},
	{"LGT", "LGT"},
	{"LIGHTS", "LGTS"},
	{"LIGHT", "LGT"},
	{"LKS", "LKS"},
	{"LK", "LK"},
	{"LNDG", "LNDG"},
	{"LNDNG", "LNDG"},
	{"LN", "LN"},
	{"LOAF", "LF"},
	{"LOCKS", "LCKS"},
	{"LOCK", "LCK"},
	{"LODGE", "LDG"},
	{"LODG", "LDG"},
	{"LOOPS", "LOOP"},
	{"LOOP", "LOOP"},
	{"MALL", "MALL"},
	{"MANORS", "MNRS"},
	{"MANOR", "MNR"},
	{"MDWS", "MDWS"},
	{"MDW", "MDW"},
	{"MEADOWS", "MDWS"},
	{"MEADOW", "MDW"},
	{"MEDOWS", "MDWS"},
	{"MEWS", "MEWS"},
	{"MILLS", "MLS"},
	{"MILL", "ML"},
	{"MISSION", "MSN"},
	{"MISSN", "MSN"},
	{"MLS", "MLS"},
	{"ML", "ML"},
	{"MNRS", "MNRS"},
	{"MNR", "MNR"},
	{"MNTAIN", "MTN"},
	{"MNTNS", "MTNS"},
	{"MNTN", "MTN"},
	{"MNT", "MT"},
	{"MOTORWAY", "MTWY"},
	{"MOUNTAINS", "MTNS"},
	{"MOUNTAIN", "MTN"},
	{"MOUNTIN", "MTN"},
	{"MOUNT", "MT"},
	{"MSN", "MSN"},
	{"MSSN", "MSN"},
	{"MTIN", "MTN"},
	{"MTNS", "MTNS"},
	{"MTN", "MTN"},
	{"MTWY", "MTWY"},
	{"MT", "MT"},
	{"NCK", "NCK"},
	{"NECK", "NCK"},
	{"OPAS", "OPAS"},
	{"ORCHARD", "ORCH"},
	{"ORCHRD", "ORCH"},
	{"ORCH", "ORCH"},
	{"OVAL", "OVAL"},
	{"OVERPASS", "OPAS"},
	{"OVL", "OVAL"},
	{"PARKS", "PARK"},
	{"PARKWAYS", "PKWY"},
	{"PARKWAY", "PKWY"},
	{"PARKWY", "PKWY"},
	{"PARK", "PARK"},
	{"PASSAGE", "PSGE"},
	{"PASS", "PASS"},
	{"PATHS", "PATH"},
	{"PATH", "PATH"},
	{"PIKES", "PIKE"},
	{"PIKE", "PIKE"},
	{"PINES", "PNES"},
	{"PINE", "PNE"},
	{"PKWAY", "PKWY"},
	{"PKWYS", "PKWY"},
	{"PKWY", "PKWY"},
	{"PKY", "PKWY"},
	{"PLACE", "PL"},
	{"PLAINS", "PLNS"},
	{"PLAIN", "PLN"},
	{"PLAZA", "PLZ"},
	{"PLNS", "PLNS"},
	{"PLN", "PLN"},
	{"PLZA", "PLZ"},
	{"PLZ", "PLZ"},
	{"PL", "PL"},
	{"PNES", "PNES"},
	{"PNE", "PNE"},
	{"POINTS", "PTS"},
	{"POINT", "PT"},
	{"PORTS", "PRTS"},
	{"PORT", "PRT"},
	{"PRAIRIE", "PR"},
	{"PRK", "PARK"},
	{"PRR", "PR"},
	{"PRTS", "PRTS"},
	{"PRT", "PRT"},
	{"PR", "PR"},
	{"PSGE", "PSGE"},
	{"PTS", "PTS"},
	{"PT", "PT"},
	{"RADIAL", "RADL"},
	{"RADIEL", "RADL"},
	{"RADL", "RADL"},
	{"RAD", "RADL"},
	{"RAMP", "RAMP"},
	{"RANCHES", "RNCH"},
	{"RANCH", "RNCH"},
	{"RAPIDS", "RPDS"},
	{"RAPID", "RPD"},
	{"RDGE", "RDG"},
	{"RDGS", "RDGS"},
	{"RDG", "RDG"},
	{"RDS", "RDS"},
	{"RD", "RD"},
	{"REST", "RST"},
	{"RIDGES", "RDGS"},
	{"RIDGE", "RDG"},
	{"RIVER", "RIV"},
	{"RIVR", "RIV"},
	{"RIV", "RIV"},
	{"RNCHS", "RNCH"},
	{"RNCH", "RNCH"},
	{"ROADS", "RDS"},
	{"ROAD", "RD"},
	{"ROUTE", "RTE"},
	{"ROW", "ROW"},
	{"RPDS", "RPDS"},
	{"RPD", "RPD"},
	{"RST", "RST"},
	{"RTE", "RTE"},
	{"RUE", "RUE"},
	{"RUN", "RUN"},
	{"RVR", "RIV"},
	{"SHLS", "SHLS"},
	{"SHL", "SHL"},
	{"SHOALS", "SHLS"},
	{"SHOAL", "SHL"},
	{"SHOARS", "SHRS"},
	{"SHOAR", "SHR"},
	{"SHORES", "SHRS"},
	{"SHORE", "SHR"},
	{"SHRS", "SHRS"},
	{"SHR", "SHR"},
	{"SKWY", "SKWY"},
	{"SKYWAY", "SKWY"},
	{"SMT", "SMT"},
	{"SPGS", "SPGS"},
	{"SPG", "SPG"},
	{"SPNGS", "SPGS"},
	{"SPNG", "SPG"},
	{"SPRINGS", "SPGS"},
	{"SPRING", "SPG"},
	{"SPRNGS", "SPGS"},
	{"SPRNG", "SPG"},
	{"SPURS", "SPUR"},
	{"SPUR", "SPUR"},
	{"SQRE", "SQ"},
	{"SQRS", "SQS"},
	{"SQR", "SQ"},
	{"SQS", "SQS"},
	{"SQUARES", "SQS"},
	{"SQUARE", "SQ"},
	{"SQU", "SQ"},
	{"SQ", "SQ"},
	{"STATION", "STA"},
	{"STATN", "STA"},
	{"STA", "STA"},
	{"STN", "STA"},
	{"STRAVENUE", "STRA"},
	{"STRAVEN", "STRA"},
	{"STRAVN", "STRA"},
	{"STRAV", "STRA"},
	{"STRA", "STRA"},
	{"STREAM", "STRM"},
	{"STREETS", "STS"},
	{"STREET", "ST"},
	{"STREME", "STRM"},
	{"STRM", "STRM"},
	{"STRT", "ST"},
	{"STRVNUE", "STRA"},
	{"STRVN", "STRA"},
	{"STR", "ST"},
	{"STS", "STS"},
	{"ST", "ST"},
	{"SUMITT", "SMT"},
	{"SUMIT", "SMT"},
	{"SUMMIT", "SMT"},
	{"TERRACE", "TER"},
	{"TERR", "TER"},
	{"TER", "TER"},
	{"THROUGHWAY", "TRWY"},
	{"TPKE", "TPKE"},
	{"TRACES", "TRCE"},
	{"TRACE", "TRCE"},
	{"TRACKS", "TRAK"},
	{"TRACK", "TRAK"},
	{"TRAFFICWAY", "TRFY"},
	{"TRAILER", "TRLR"},
	{"TRAILS", "TRL"},
	{"TRAIL", "TRL"},
	{"TRAK", "TRAK"},
	{"TRCE", "TRCE"},
	{"TRFY", "TRFY"},
	{"TRKS", "TRAK"},
	{"TRK", "TRAK"},
	{"TRLRS", "TRLR"},
	{"TRLR", "TRLR"},
	{"TRLS", "TRL"},
	{"TRL", "TRL"},
	{"TRNPK", "TPKE"},
	{"TRWY", "TRWY"},
	{"TUNEL", "TUNL"},
	{"TUNLS", "TUNL"},
	{"TUNL", "TUNL"},
	{"TUNNELS", "TUNL"},
	{"TUNNEL", "TUNL"},
	{"TUNNL", "TUNL"},
	{"TURNPIKE", "TPKE"},
	{"TURNPK", "TPKE"},
	{"UNDERPASS", "UPAS"},
	{"UNIONS", "UNS"},
	{"UNION", "UN"},
	{"UNS", "UNS"},
	{"UN", "UN"},
	{"UPAS", "UPAS"},
	{"VALLEYS", "VLYS"},
	{"VALLEY", "VLY"},
	{"VALLY", "VLY"},
	{"VDCT", "VIA"},
	{"VIADCT", "VIA"},
	{"VIADUCT", "VIA"},
	{"VIA", "VIA"},
	{"VIEWS", "VWS"},
	{"VIEW", "VW"},
	{"VILLAGES", "VLGS"},
	{"VILLAGE", "VLG"},
	{"VILLAG", "VLG"},
	{"VILLE", "VL"},
	{"VILLG", "VLG"},
	{"VILLIAGE", "VLG"},
	{"VILL", "VLG"},
	{"VISTA", "VIS"},
	{"VIST", "VIS"},
	{"VIS", "VIS"},
	{"VLGS", "VLGS"},
	{"VLG", "VLG"},
	{"VLLY", "VLY"},
	{"VLYS", "VLYS"},
	{"VLY", "VLY"},
	{"VL", "VL"},
	{"VSTA", "VIS"},
	{"VST", "VIS"},
	{"VWS", "VWS"},
	{"VW", "VW"},
	{"WALKS", "WALK"},
	{"WALK", "WALK"},
	{"WALL", "WALL"},
	{"WAYS", "WAYS"},
	{"WAY", "WAY"},
	{"WELLS", "WLS"},
	{"WELL", "WL"},
	{"WLS", "WLS"},
	{"WL", "WL"},
	{"WY", "WAY"},
	{"XING", "XING"},
	{"XRDS", "XRDS"},
	{"XRD", "XRD"},
}
