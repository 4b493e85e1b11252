package mapping

import "parcelnorm/internal"

// DeedTypes resolves recorder instrument labels and codes. County pages mix
// full names ("SPECIAL WARRANTY DEED") with two or three letter codes ("SW",
// "QC", "CT").
var DeedTypes = register(Table[internal.DeedType]{
	Name: "deed_type",
	Rules: []Rule[internal.DeedType]{
		{"SPECIAL WARRANTY DEED", Any(Phrase("SPECIAL WARRANTY", "SPEC WARRANTY"), Token("SWD", "SW", "SPWD")), internal.DeedSpecialWarranty},
		{"QUITCLAIM DEED", Any(Phrase("QUIT CLAIM"), Token("QUITCLAIM", "QCD", "QC")), internal.DeedQuitclaim},
		{"PERSONAL REPRESENTATIVE DEED", Any(Phrase("PERSONAL REPRESENTATIVE", "PERS REP"), Token("PRD", "PR")), internal.DeedPersonalRepresentative},
		{"TRUSTEES DEED", Any(Phrase("TRUSTEES DEED", "TRUSTEE DEED", "TRUSTEE S DEED"), Token("TRD")), internal.DeedTrustees},
		{"TAX DEED", Any(Phrase("TAX DEED"), Token("TXD", "TD")), internal.DeedTax},
		{"SHERIFFS DEED", Token("SHERIFF", "SHERIFFS", "SHD"), internal.DeedSheriffs},
		{"CERTIFICATE OF TITLE", Any(Phrase("CERTIFICATE OF TITLE", "COURT ORDER", "FINAL JUDGMENT", "ORDER OF TAKING"), Token("CT", "COT")), internal.DeedCourtOrder},
		{"DEED IN LIEU OF FORECLOSURE", Any(Phrase("IN LIEU"), Token("DIL")), internal.DeedInLieuOfForeclosure},
		{"CORRECTIVE DEED", Token("CORRECTIVE", "CORRECTION", "CRD"), internal.DeedCorrection},
		{"LADY BIRD DEED", Any(Phrase("LADY BIRD", "LADYBIRD", "ENHANCED LIFE ESTATE"), Token("LBD")), internal.DeedLadyBird},
		{"LIFE ESTATE DEED", Any(Phrase("LIFE ESTATE"), Token("LED")), internal.DeedLifeEstate},
		{"TRANSFER ON DEATH DEED", Any(Phrase("TRANSFER ON DEATH"), Token("TOD")), internal.DeedTransferOnDeath},
		{"ADMINISTRATORS DEED", Token("ADMINISTRATOR", "ADMINISTRATORS", "ADMINISTRATRIX"), internal.DeedAdministrators},
		{"GUARDIANS DEED", Token("GUARDIAN", "GUARDIANS"), internal.DeedGuardians},
		{"RECEIVERS DEED", Token("RECEIVER", "RECEIVERS"), internal.DeedReceivers},
		{"RIGHT OF WAY DEED", Any(Phrase("RIGHT OF WAY"), Token("ROW")), internal.DeedRightOfWay},
		{"CONTRACT FOR DEED", Any(Phrase("CONTRACT FOR DEED", "AGREEMENT FOR DEED", "LAND CONTRACT"), Token("CFD", "AFD")), internal.DeedContractForDeed},
		{"ASSIGNMENT OF CONTRACT", Token("ASSIGNMENT", "ASSIGN", "ASG"), internal.DeedAssignmentOfContract},
		{"GIFT DEED", Token("GIFT"), internal.DeedGift},
		{"INTERSPOUSAL TRANSFER DEED", Token("INTERSPOUSAL"), internal.DeedInterspousalTransfer},
		{"JOINT TENANCY DEED", Any(Phrase("JOINT TENANCY"), Token("JTWROS")), internal.DeedJointTenancy},
		{"TENANCY IN COMMON DEED", Phrase("TENANCY IN COMMON", "TENANTS IN COMMON"), internal.DeedTenancyInCommon},
		{"QUIET TITLE DEED", Phrase("QUIET TITLE"), internal.DeedQuietTitle},
		{"BARGAIN AND SALE DEED", Any(Phrase("BARGAIN AND SALE"), Token("BSD")), internal.DeedBargainAndSale},
		{"GRANT DEED", Any(Phrase("GRANT DEED"), Token("GD")), internal.DeedGrant},
		{"WARRANTY DEED", Token("WARRANTY", "WD", "WAR", "WARR", "WTY"), internal.DeedWarranty},
		{"MISCELLANEOUS", Token("MISCELLANEOUS", "MISC"), internal.DeedMiscellaneous},
	},
	Default:    internal.DeedMappingNotAvailable,
	HasDefault: true,
})

// DocumentTypes keys a recorded document's type off the deed type it belongs to.
var DocumentTypes = register(Table[internal.DocumentType]{
	Name: "document_type",
	Rules: []Rule[internal.DocumentType]{
		{string(internal.DeedSpecialWarranty), Exact(string(internal.DeedSpecialWarranty)), internal.DocumentWarrantyDeed},
		{string(internal.DeedWarranty), Exact(string(internal.DeedWarranty)), internal.DocumentWarrantyDeed},
		{string(internal.DeedQuitclaim), Exact(string(internal.DeedQuitclaim)), internal.DocumentQuitClaimDeed},
		{string(internal.DeedBargainAndSale), Exact(string(internal.DeedBargainAndSale)), internal.DocumentBargainAndSaleDeed},
	},
	Default:    internal.DocumentConveyanceDeed,
	HasDefault: true,
})

// DocumentTypeFor never returns an empty document type.
func DocumentTypeFor(deed internal.DeedType) internal.DocumentType {
	return DocumentTypes.Map(string(deed))
}
