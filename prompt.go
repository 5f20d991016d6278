package pdfchat

import (
	"fmt"
	"strings"
)

// SystemPrompt instructs the model to answer strictly from the supplied
// context and to state uncertainty rather than invent facts. Both generator
// implementations share it so the grounding contract does not drift between
// providers.
const SystemPrompt = "You are a helpful assistant answering questions about a set of PDF documents. " +
	"You MUST answer strictly and only using the information in the provided CONTEXT. " +
	"If the answer is not explicitly in the context, you MUST reply: " +
	"\"I am not sure; the documents I have do not say that clearly.\" " +
	"Do NOT invent facts. Do not use outside knowledge. " +
	"Be clear, concise, and friendly."

// BuildUserPrompt builds the user prompt containing the question and the
// retrieved chunks labelled by source file.
func BuildUserPrompt(question string, chunks []*Chunk) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QUESTION:\n%s\n\n", question)
	sb.WriteString("CONTEXT (from PDF documents):\n")
	for i, chunk := range chunks {
		if i > 0 {
			sb.WriteString("\n\n-----\n\n")
		}
		fmt.Fprintf(&sb, "Document: %s\n%s", chunk.FileName, chunk.Content)
	}
	sb.WriteString("\n\nNow give a clear answer using only this context. ")
	sb.WriteString("If the context does not contain the answer, say you are not sure.")
	return sb.String()
}
