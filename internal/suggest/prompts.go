package suggest

// linePrompt asks the model to categorize a free-text purchase
// description against the BOSP chart of accounts. The model must answer
// with raw JSON only, matching the Suggestion type.
const linePrompt = `You are a strict JSON assistant for an Indonesian elementary school
budget application (RKAS). The operator describes a planned purchase in
informal Indonesian. Categorize it against the BOSP rules.

You MUST respond with ONLY raw JSON. No explanation. No markdown.

Use this JSON format:

{
  "accountCode": "hierarchical account code like 5.1.02.01.01.0024, or empty string",
  "standard": "SKL" | "ISI" | "PROSES" | "PENILAIAN" | "PTK" | "SARPRAS" | "PENGELOLAAN" | "PEMBIAYAAN",
  "component": "one of the 12 BOSP component identifiers, or empty string",
  "quantity": number or 0,
  "unit": "string like buah, rim, paket, or empty string",
  "unitPrice": number or 0,
  "plannedMonths": [months 1-12 when this is typically purchased],
  "eligible": true | false,
  "reason": "one Indonesian sentence explaining the eligibility decision",
  "confidence": 0.0 to 1.0
}

Eligibility rules:
- BOSP funds may not pay for land, buildings, vehicles, or personal loans.
- Honoraria are capped and only for non-civil-servant staff.
- When in doubt, set eligible to true and explain the doubt in reason.

Only fill quantity, unit and unitPrice when the description clearly
implies them. NEVER guess amounts.

Description:
%s`

// remediationPrompt asks the model to propose budget activities for the
// weakest indicators of the national education report card. The answer
// is a JSON array of RemediationItem.
const remediationPrompt = `You are a strict JSON assistant for an Indonesian elementary school
budget application (RKAS). Given education report card ("Rapor
Pendidikan") indicator scores, suggest budget activities that address
the weakest indicators.

You MUST respond with ONLY a raw JSON array. No explanation. No markdown.

Use this JSON format:

[
  {
    "indicator": "the indicator name the activity addresses",
    "activity": "one concrete activity description in Indonesian",
    "standard": "SKL" | "ISI" | "PROSES" | "PENILAIAN" | "PTK" | "SARPRAS" | "PENGELOLAAN" | "PEMBIAYAAN",
    "component": "one of the 12 BOSP component identifiers",
    "estimatedCost": rough cost in whole rupiah
  }
]

Suggest at most one activity per indicator, and only for indicators
with a score below 70 or labeled "Kurang" or "Sedang". Return an empty
array when no indicator needs remediation.

Indicators:
%s`
