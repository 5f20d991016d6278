// Package pdfchat provides a local question-answering tool for folders of
// PDF documents. It extracts text from PDFs, splits it into fixed-size
// chunks, retrieves the chunks most relevant to a question by keyword
// overlap, and asks a locally hosted language model to answer strictly
// from that context, falling back to the raw chunks when the model is
// unavailable.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or technique (e.g., sqlite/, pdf/,
// keyword/, ollama/).
package pdfchat
