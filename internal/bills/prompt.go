package bills

import "fmt"

// promptTemplate asks for the fixed bill field set and a JSON-only response.
// The downstream parse depends entirely on the model honoring the format
// instruction, so the wording stays unambiguous and the field list fixed.
const promptTemplate = `Extract the following fields from this bill text:
- Vendor Name
- Invoice Number
- Date
- Total Amount
- Tax Amount
- Due Date
- Line Items (if available, each with description, quantity, price, amount)

Return the result as a JSON object and nothing else. Here is the bill text:
%s`

// BuildPrompt embeds the extracted bill text into the fixed instruction
// template. Pure string construction; the caller must reject empty text
// before calling.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
