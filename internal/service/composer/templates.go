package composer

import "github.com/pathiram/backend/internal/model"

// Template order per type is fixed: statement, title reference, payment,
// property, witnesses, typist.

func composeReceipt(f model.ReceiptFields) *Document {
	d := newDocument(f)
	buyer := party{f.BuyerName, f.BuyerRelationType, f.BuyerRelationName, f.BuyerAge, f.BuyerAddress}
	seller := party{f.SellerName, f.SellerRelationType, f.SellerRelationName, f.SellerAge, f.SellerAddress}

	// receipt statement
	d.paragraph(SectionParties, framed("", "எழுதிக் கொடுக்கும் அடமானக் கடன் ரசீது.",
		dated(f.ReceiptDate),
		placed(f.ReceiptPlace),
		when(seller.phrase(), seller.phrase(), " அவர்களுக்கு,"),
		when(buyer.phrase(), buyer.phrase(), " ஆகிய நான்"),
	))

	// prior mortgage deed
	d.paragraph(SectionParties, framed("",
		"பதிவு செய்யப்பட்ட அடமானப் பத்திரத்தின் மூலம் கீழ்க்கண்ட சொத்தைத் தாங்கள் எனக்கு அடமானம் செய்து கொடுத்திருந்தீர்கள்.",
		append([]string{dated(f.PriorDocDate)}, priorDocument(f.PriorDocOffice, f.PriorDocYear, f.PriorDocNumber)...)...,
	))

	// settlement
	d.paragraph(SectionParties, framed("",
		"முழுவதுமாக நான் பெற்றுக் கொண்டேன். இனி மேற்படி அடமானத்தின் பேரில் எனக்கு எவ்வித பாத்தியமும் கிடையாது.",
		when(f.LoanAmount, "மேற்படி அடமானக் கடன் தொகையான ", amount(f.LoanAmount, f.LoanAmountWords)),
		dated(f.SettlementDate),
		when(f.PaymentMode, f.PaymentMode, " மூலமாக"),
	))

	d.property(f.PropertyFields)
	d.witnesses(f.WitnessFields)
	d.typist(f.TypistFields)
	return d
}

func composeAgreement(f model.AgreementFields) *Document {
	d := newDocument(f)
	seller := party{f.SellerName, f.SellerRelationType, f.SellerRelationName, f.SellerAge, f.SellerAddress}
	buyer := party{f.BuyerName, f.BuyerRelationType, f.BuyerRelationName, f.BuyerAge, f.BuyerAddress}

	d.paragraph(SectionParties, framed("", "எழுதிக் கொடுக்கும் கிரைய ஒப்பந்தப் பத்திரம்.",
		dated(f.AgreementDate),
		placed(f.AgreementPlace),
		when(buyer.phrase(), buyer.phrase(), " அவர்களுக்கு,"),
		when(seller.phrase(), seller.phrase(), " ஆகிய நான்"),
	))

	d.paragraph(SectionParties, framed("கீழ்க்கண்ட சொத்து",
		"பதிவு செய்யப்பட்ட ஆவணத்தின் மூலம் எனக்குப் பாத்தியப்பட்டு என் அனுபோகத்தில் இருந்து வருகிறது.",
		priorDocument(f.PriorDocOffice, f.PriorDocYear, f.PriorDocNumber)...,
	))

	// price and advance
	d.paragraph(SectionParties, sentence(
		when(f.SaleAmount, "மேற்படி சொத்தை ", amount(f.SaleAmount, f.SaleAmountWords),
			" விலைக்குத் தங்களுக்குக் கிரையம் செய்து கொடுக்க ஒப்புக்கொள்கிறேன்."),
		when(f.AdvanceAmount, sentence(dated(f.AdvanceDate), "இதற்கு முன்பணமாக",
			amount(f.AdvanceAmount, f.AdvanceAmountWords), "தங்களிடமிருந்து பெற்றுக் கொண்டேன்.")),
	))

	// balance and period
	d.paragraph(SectionParties, framed("",
		"கிரையத்தை முடித்துக் கொள்ள வேண்டும். தவறினால் இந்த ஒப்பந்தம் ரத்தாகிவிடும்.",
		when(f.AgreementPeriod, "இன்று முதல் ", f.AgreementPeriod, " மாதங்களுக்குள்"),
		when(f.BalanceAmount, "மீதித் தொகையான ", amount(f.BalanceAmount, f.BalanceAmountWords), " -ஐச் செலுத்தி"),
	))

	d.property(f.PropertyFields)
	d.witnesses(f.WitnessFields)
	d.typist(f.TypistFields)
	return d
}

func composeRelease(f model.ReleaseFields) *Document {
	d := newDocument(f)
	releasor := party{f.ReleasorName, f.ReleasorRelationType, f.ReleasorRelationName, f.ReleasorAge, f.ReleasorAddress}
	releasee := party{f.ReleaseeName, f.ReleaseeRelationType, f.ReleaseeRelationName, f.ReleaseeAge, f.ReleaseeAddress}

	d.paragraph(SectionParties, framed("", "எழுதிக் கொடுக்கும் பாகப்பிரிவினை விடுதலைப் பத்திரம்.",
		dated(f.DeedDate),
		placed(f.DeedPlace),
		when(releasee.phrase(), releasee.phrase(), " அவர்களுக்கு,"),
		when(releasor.phrase(), releasor.phrase(), " ஆகிய நான்"),
	))

	// family relation and how the property came to the family
	d.paragraph(SectionParties, sentence(
		when(f.FamilyRelation, "தாங்கள் எனது ", f.FamilyRelation, " ஆவீர்கள்."),
		when(f.AncestorName, "கீழ்க்கண்ட சொத்து நமது முன்னோரான ", f.AncestorName, " அவர்களின் மூலம் நமக்குப் பாத்தியப்பட்டது."),
		framed("", "பதிவு செய்யப்பட்ட ஆவணத்தின்படி மேற்படி சொத்தில் எனக்கும் பாகம் உண்டு.",
			priorDocument(f.PriorDocOffice, f.PriorDocYear, f.PriorDocNumber)...),
	))

	// release
	d.paragraph(SectionParties, when(anyOf(f.ConsiderationAmount, f.ReleasorName, f.ReleaseeName), sentence(
		when(f.ConsiderationAmount, "இதற்கு ஈடாக ", amount(f.ConsiderationAmount, f.ConsiderationAmountWords),
			" தங்களிடமிருந்து பெற்றுக் கொண்டு"),
		"மேற்படி சொத்தில் எனக்குள்ள பாகத்தையும் உரிமையையும் தங்களுக்கு முழுவதுமாக விடுதலை செய்து கொடுக்கிறேன்.",
	)))

	d.property(f.PropertyFields)
	d.witnesses(f.WitnessFields)
	d.typist(f.TypistFields)
	return d
}

func composeSale(f model.SaleFields) *Document {
	d := newDocument(f)
	seller := party{f.SellerName, f.SellerRelationType, f.SellerRelationName, f.SellerAge, f.SellerAddress}
	buyer := party{f.BuyerName, f.BuyerRelationType, f.BuyerRelationName, f.BuyerAge, f.BuyerAddress}

	d.paragraph(SectionParties, framed("", "எழுதிக் கொடுக்கும் கிரையப் பத்திரம்.",
		dated(f.DeedDate),
		placed(f.DeedPlace),
		when(buyer.phrase(), buyer.phrase(), " அவர்களுக்கு,"),
		when(seller.phrase(), seller.phrase(), " ஆகிய நான்"),
	))

	d.paragraph(SectionParties, framed("கீழ்க்கண்ட சொத்து",
		"பதிவு செய்யப்பட்ட ஆவணத்தின் மூலம் எனக்குப் பாத்தியப்பட்டு என் அனுபோகத்தில் இருந்து வருகிறது.",
		priorDocument(f.PriorDocOffice, f.PriorDocYear, f.PriorDocNumber)...,
	))

	// consideration and conveyance
	d.paragraph(SectionParties, framed("",
		"முழுவதுமாகப் பெற்றுக் கொண்டு தங்களுக்குக் கிரையம் செய்து சுவாதீனம் ஒப்படைத்துவிட்டேன். இனி மேற்படி சொத்தில் எனக்கோ என் வாரிசுகளுக்கோ எவ்வித பாத்தியமும் கிடையாது.",
		when(f.SaleAmount, "மேற்படி சொத்தின் கிரையத் தொகையான ", amount(f.SaleAmount, f.SaleAmountWords)),
		when(f.PaymentMode, f.PaymentMode, " மூலமாக"),
	))

	d.property(f.PropertyFields)
	d.witnesses(f.WitnessFields)
	d.typist(f.TypistFields)
	return d
}

func (d *Document) property(p model.PropertyFields) {
	d.heading(SectionProperty, "சொத்து விவரம்")

	location := join(", ",
		when(p.State, p.State, " மாநிலம்"),
		when(p.District, p.District, " மாவட்டம்"),
		when(p.Taluk, p.Taluk, " வட்டம்"),
		when(p.Village, p.Village, " கிராமம்"),
	)
	d.paragraph(SectionProperty, terminate(sentence(
		location,
		when(p.SubRegistrarOffice, p.SubRegistrarOffice, " சார்பதிவாளர் அலுவலக எல்லைக்குட்பட்ட"),
		when(p.SurveyNumber, "சர்வே எண்:- ", p.SurveyNumber, when(p.SubDivision, "/", p.SubDivision)),
		when(p.Extent, "விஸ்தீரணம் ", p.Extent),
		p.PropertyDescription,
	)))

	d.list(KindBoundaries, SectionProperty,
		when(p.EastBoundary, "கிழக்கு: ", p.EastBoundary),
		when(p.WestBoundary, "மேற்கு: ", p.WestBoundary),
		when(p.NorthBoundary, "வடக்கு: ", p.NorthBoundary),
		when(p.SouthBoundary, "தெற்கு: ", p.SouthBoundary),
	)
}

func (d *Document) witnesses(w model.WitnessFields) {
	d.heading(SectionWitnesses, "சாட்சிகள்")
	d.list(KindWitnesses, SectionWitnesses,
		witness(w.Witness1Name, w.Witness1RelationName, w.Witness1Address),
		witness(w.Witness2Name, w.Witness2RelationName, w.Witness2Address),
	)
}

func witness(name, relationName, address string) string {
	return when(name, name,
		when(relationName, " (த/பெ. ", relationName, ")"),
		when(address, ", ", address),
	)
}

func (d *Document) typist(t model.TypistFields) {
	text := when(t.TypistName, "கணினியில் தட்டச்சு செய்தவர்: ", t.TypistName, when(t.TypistOffice, ", ", t.TypistOffice))
	if text == "" {
		return
	}
	d.Blocks = append(d.Blocks, Block{Kind: KindTypist, Section: SectionWitnesses, Text: text})
}
