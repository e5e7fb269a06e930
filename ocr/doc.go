// Package ocr defines the contract between the anonymization pipeline and
// optical character recognition providers. Results carry per-word pixel
// bounds together with byte offsets into the linearized text, which is what
// lets entity spans detected on the text be mapped back onto image regions
// for redaction.
package ocr
