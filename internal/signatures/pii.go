// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package signatures

import "piiscan/internal/detector"

// piiPatterns holds the structured PII families: contact details, national
// identifiers, travel documents, plates, and network addresses. Regional
// groups are kept together so custom catalogs can shadow them wholesale.
var piiPatterns = []Pattern{
	// --- Global ---
	{
		Name:        "email_address",
		EntityType:  detector.EntityEmail,
		Expr:        `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
		Confidence:  0.95,
		Description: "Email address",
	},
	{
		Name:        "url",
		EntityType:  detector.EntityURL,
		Expr:        `\b(?:https?://|www\.)[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)+(?:/[^\s]*)?`,
		Confidence:  0.80,
		Description: "URL",
	},
	{
		Name:        "ipv4_address",
		EntityType:  detector.EntityIPAddress,
		Expr:        `\b(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\b`,
		Confidence:  0.80,
		Description: "IPv4 address",
	},
	{
		Name:        "credit_card",
		EntityType:  detector.EntityCreditCard,
		Expr:        `\b(?:(?:4\d{3}|5[1-5]\d{2}|6011)[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}|3[47]\d{2}[-\s]?\d{6}[-\s]?\d{5})\b`,
		Confidence:  0.85,
		Description: "Payment card number",
	},
	{
		Name:        "btc_address",
		EntityType:  detector.EntityCrypto,
		Expr:        `\b[13][a-km-zA-HJ-NP-Z1-9]{25,34}\b`,
		Confidence:  0.70,
		Description: "Bitcoin address",
	},
	{
		Name:        "eth_address",
		EntityType:  detector.EntityCrypto,
		Expr:        `\b0x[a-fA-F0-9]{40}\b`,
		Confidence:  0.85,
		Description: "Ethereum address",
	},
	{
		Name:         "iban",
		EntityType:   detector.EntityIBAN,
		Expr:         `\b[A-Z]{2}\d{2}[A-Z0-9]{11,30}\b`,
		Confidence:   needsContextConfidence,
		NeedsContext: true,
		Description:  "IBAN",
	},

	// --- United States ---
	{
		Name:        "us_ssn",
		EntityType:  detector.EntityUSSSN,
		Expr:        `\b\d{3}-\d{2}-\d{4}\b`,
		Confidence:  0.85,
		Description: "US Social Security number",
	},
	{
		Name:        "us_itin",
		EntityType:  detector.EntityUSITIN,
		Expr:        `\b9\d{2}-[78]\d-\d{4}\b`,
		Confidence:  0.90,
		Description: "US ITIN",
	},
	{
		Name:        "us_phone",
		EntityType:  detector.EntityPhone,
		Expr:        `\b(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]\d{3}[-.\s]?\d{4}\b`,
		Confidence:  0.80,
		Description: "US phone number",
	},
	{
		Name:         "us_passport",
		EntityType:   detector.EntityPassport,
		Expr:         `\b[0-9]{9}\b`,
		Confidence:   needsContextConfidence,
		NeedsContext: true,
		Description:  "US passport number",
	},

	// --- China ---
	{
		Name:        "cn_resident_id",
		EntityType:  detector.EntityCNResidentID,
		Expr:        `\b[1-9]\d{5}(?:18|19|20)\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{3}[0-9Xx]\b`,
		Confidence:  0.95,
		Description: "CN resident identity card number",
	},
	{
		Name:        "cn_mobile",
		EntityType:  detector.EntityPhone,
		Expr:        `\b1[3-9]\d{9}\b`,
		Confidence:  0.85,
		Description: "CN mobile number",
	},
	{
		Name:        "cn_landline",
		EntityType:  detector.EntityPhone,
		Expr:        `\b0\d{2,3}-\d{7,8}\b`,
		Confidence:  0.75,
		Description: "CN landline number",
	},
	{
		Name:        "cn_passport",
		EntityType:  detector.EntityPassport,
		Expr:        `\b[EG]\d{8}\b`,
		Confidence:  0.80,
		Description: "CN passport number",
	},
	{
		Name:        "cn_vehicle_plate",
		EntityType:  detector.EntityVehiclePlate,
		Expr:        `[京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼][A-HJ-NP-Z][A-HJ-NP-Z0-9]{4,5}[A-HJ-NP-Z0-9挂学警港澳]`,
		Confidence:  0.90,
		Description: "CN vehicle plate",
	},

	// --- International ---
	{
		Name:        "intl_phone",
		EntityType:  detector.EntityPhone,
		Expr:        `\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{3,4}[-.\s]?\d{3,9}\b`,
		Confidence:  0.75,
		Description: "International phone number",
	},
	{
		Name:        "uk_nino",
		EntityType:  detector.EntityNationalID,
		Expr:        `\b[A-CEGHJ-PR-TW-Z][A-CEGHJ-NPR-TW-Z]\d{6}[A-D]\b`,
		Confidence:  0.85,
		Description: "UK National Insurance number",
	},
	{
		Name:        "in_pan",
		EntityType:  detector.EntityNationalID,
		Expr:        `\b[A-Z]{5}\d{4}[A-Z]\b`,
		Confidence:  0.80,
		Description: "India PAN",
	},
	{
		Name:        "sg_nric",
		EntityType:  detector.EntityNationalID,
		Expr:        `\b[STFG]\d{7}[A-Z]\b`,
		Confidence:  0.85,
		Description: "Singapore NRIC/FIN",
	},
}
