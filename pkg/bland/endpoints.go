package bland

import "net/http"

// Org ID header keys. Most operations carry the organization ID under
// "encrypted_key"; the call-send operations use "organization" instead.
// This mirrors the provider API and is configured per operation.
const (
	orgHeaderDefault = "encrypted_key"
	orgHeaderCalls   = "organization"
)

// Operation describes one provider endpoint: its HTTP method, the path
// template relative to the versioned base URL, and which header (if any)
// carries the organization ID. Pure data; placeholders such as {call_id}
// are resolved by the request builder.
type Operation struct {
	Name      string
	Method    string
	Path      string
	OrgHeader string
}

var (
	// Calls
	opSendCall        = Operation{"send_call", http.MethodPost, "/calls", orgHeaderCalls}
	opStopCall        = Operation{"stop_call", http.MethodPost, "/calls/{call_id}/stop", ""}
	opStopAllCalls    = Operation{"stop_all_calls", http.MethodPost, "/calls/active/stop", ""}
	opListCalls       = Operation{"list_calls", http.MethodGet, "/calls", orgHeaderDefault}
	opCallDetails     = Operation{"call_details", http.MethodGet, "/calls/{call_id}", orgHeaderDefault}
	opAnalyzeCall     = Operation{"analyze_call", http.MethodPost, "/calls/{call_id}/analyze", ""}
	opCallRecording   = Operation{"call_recording", http.MethodGet, "/calls/{call_id}/recording", orgHeaderDefault}
	opCallTranscripts = Operation{"call_transcripts", http.MethodGet, "/calls/{call_id}/transcripts", orgHeaderDefault}

	// Batches
	opSendBatch     = Operation{"send_batch_calls", http.MethodPost, "/calls/batch", orgHeaderDefault}
	opListBatches   = Operation{"list_batches", http.MethodGet, "/calls/batch", orgHeaderDefault}
	opBatchDetails  = Operation{"batch_details", http.MethodGet, "/calls/batch/{batch_id}", orgHeaderDefault}
	opBatchAnalysis = Operation{"batch_analysis", http.MethodGet, "/calls/batch/{batch_id}/analysis/{analysis_id}", orgHeaderDefault}
	opAnalyzeBatch  = Operation{"analyze_batch", http.MethodPost, "/calls/batch/{batch_id}/analyze", orgHeaderDefault}
	opStopBatch     = Operation{"stop_batch", http.MethodPost, "/calls/batch/{batch_id}/stop", orgHeaderDefault}

	// Pathways
	opCreatePathway = Operation{"create_pathway", http.MethodPost, "/pathways", orgHeaderDefault}
	opUpdatePathway = Operation{"update_pathway", http.MethodPost, "/pathways/{pathway_id}/update", orgHeaderDefault}
	opDeletePathway = Operation{"delete_pathway", http.MethodDelete, "/pathways/{pathway_id}/delete", orgHeaderDefault}
	opPathwayInfo   = Operation{"pathway_info", http.MethodGet, "/pathways/{pathway_id}", orgHeaderDefault}
	opListPathways  = Operation{"list_pathways", http.MethodGet, "/pathways", orgHeaderDefault}
	opMovePathway   = Operation{"move_pathway", http.MethodPost, "/pathways/{pathway_id}/move", orgHeaderDefault}

	// Pathway versions
	opCreateVersion  = Operation{"create_pathway_version", http.MethodPost, "/pathways/{pathway_id}/versions/create", orgHeaderDefault}
	opListVersions   = Operation{"list_pathway_versions", http.MethodGet, "/pathways/{pathway_id}/versions", orgHeaderDefault}
	opVersionDetails = Operation{"pathway_version", http.MethodGet, "/pathways/{pathway_id}/versions/{version_id}", orgHeaderDefault}
	opPromoteVersion = Operation{"promote_pathway_version", http.MethodPost, "/pathways/{pathway_id}/versions/{version_id}/promote", orgHeaderDefault}
	opDeleteVersion  = Operation{"delete_pathway_version", http.MethodDelete, "/pathways/{pathway_id}/versions/{version_id}/delete", orgHeaderDefault}

	// Pathway chat
	opCreateChat  = Operation{"create_pathway_chat", http.MethodPost, "/pathway/chat/create", orgHeaderDefault}
	opSendChat    = Operation{"send_pathway_chat", http.MethodPost, "/pathway/chat/{chat_id}", orgHeaderDefault}
	opChatHistory = Operation{"pathway_chat_history", http.MethodGet, "/pathway/chat/{chat_id}", orgHeaderDefault}

	// Folders
	opCreateFolder   = Operation{"create_folder", http.MethodPost, "/folders", orgHeaderDefault}
	opUpdateFolder   = Operation{"update_folder", http.MethodPatch, "/folders/{folder_id}/update", orgHeaderDefault}
	opDeleteFolder   = Operation{"delete_folder", http.MethodDelete, "/folders/{folder_id}/delete", orgHeaderDefault}
	opListFolders    = Operation{"list_folders", http.MethodGet, "/folders", orgHeaderDefault}
	opFolderPathways = Operation{"folder_pathways", http.MethodGet, "/folders/{folder_id}/pathways", orgHeaderDefault}

	// Phone numbers
	opPurchaseNumber = Operation{"purchase_phone_number", http.MethodPost, "/phone/purchase", orgHeaderDefault}
	opListInbound    = Operation{"list_inbound_numbers", http.MethodGet, "/phone/inbound", orgHeaderDefault}
	opListOutbound   = Operation{"list_outbound_numbers", http.MethodGet, "/phone/outbound", orgHeaderDefault}
	opInboundDetails = Operation{"inbound_details", http.MethodGet, "/phone/inbound/{phone_number}", orgHeaderDefault}
	opUpdateInbound  = Operation{"update_inbound_details", http.MethodPost, "/phone/inbound/update", orgHeaderDefault}
	opDeleteInbound  = Operation{"delete_inbound_number", http.MethodDelete, "/phone/inbound/{phone_number}/delete", orgHeaderDefault}
	opUploadInbound  = Operation{"upload_inbound_numbers", http.MethodPost, "/phone/inbound/upload", orgHeaderDefault}

	// Voices
	opListVoices    = Operation{"list_voices", http.MethodGet, "/voices", orgHeaderDefault}
	opVoiceDetails  = Operation{"voice_details", http.MethodGet, "/voices/{voice_id}", orgHeaderDefault}
	opGenerateAudio = Operation{"generate_audio_sample", http.MethodPost, "/voices/generate", orgHeaderDefault}
	opPublishVoice  = Operation{"publish_cloned_voice", http.MethodPost, "/voices/publish", orgHeaderDefault}

	// Custom tools
	opCreateTool  = Operation{"create_custom_tool", http.MethodPost, "/tools", orgHeaderDefault}
	opUpdateTool  = Operation{"update_custom_tool", http.MethodPost, "/tools/{tool_id}/update", orgHeaderDefault}
	opDeleteTool  = Operation{"delete_custom_tool", http.MethodDelete, "/tools/{tool_id}/delete", orgHeaderDefault}
	opToolDetails = Operation{"custom_tool_details", http.MethodGet, "/tools/{tool_id}", orgHeaderDefault}
	opListTools   = Operation{"list_custom_tools", http.MethodGet, "/tools/list", orgHeaderDefault}

	// Web agents
	opCreateAgent    = Operation{"create_web_agent", http.MethodPost, "/web-agents", orgHeaderDefault}
	opUpdateAgent    = Operation{"update_web_agent", http.MethodPost, "/web-agents/{agent_id}/update", orgHeaderDefault}
	opDeleteAgent    = Operation{"delete_web_agent", http.MethodDelete, "/web-agents/{agent_id}/delete", orgHeaderDefault}
	opListAgents     = Operation{"list_web_agents", http.MethodGet, "/web-agents", orgHeaderDefault}
	opAuthorizeAgent = Operation{"authorize_web_agent", http.MethodPost, "/web-agents/{agent_id}/authorize", orgHeaderDefault}

	// Encrypted keys
	opCreateKey = Operation{"create_encrypted_key", http.MethodPost, "/encrypted-keys", orgHeaderDefault}
	opDeleteKey = Operation{"delete_encrypted_key", http.MethodDelete, "/encrypted-keys/{key_id}/delete", orgHeaderDefault}

	// Knowledge vectors
	opCreateVector  = Operation{"create_vector", http.MethodPost, "/vector", orgHeaderDefault}
	opUpdateVector  = Operation{"update_vector", http.MethodPost, "/vector/{vector_id}", orgHeaderDefault}
	opVectorDetails = Operation{"vector_details", http.MethodGet, "/vector/{vector_id}/details", orgHeaderDefault}
	opDeleteVector  = Operation{"delete_vector", http.MethodDelete, "/vector/{vector_id}/delete", orgHeaderDefault}
)
