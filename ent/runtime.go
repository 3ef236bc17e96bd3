// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/boaziz1447-maker/omar-alessa/ent/lessonprofile"
	"github.com/boaziz1447-maker/omar-alessa/ent/llmrequestevent"
	"github.com/boaziz1447-maker/omar-alessa/ent/schema"
	"github.com/boaziz1447-maker/omar-alessa/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonprofileFields := schema.LessonProfile{}.Fields()
	_ = lessonprofileFields
	// lessonprofileDescTeacherName is the schema descriptor for teacher_name field.
	lessonprofileDescTeacherName := lessonprofileFields[0].Descriptor()
	// lessonprofile.DefaultTeacherName holds the default value on creation for the teacher_name field.
	lessonprofile.DefaultTeacherName = lessonprofileDescTeacherName.Default.(string)
	// lessonprofileDescSchool is the schema descriptor for school field.
	lessonprofileDescSchool := lessonprofileFields[1].Descriptor()
	// lessonprofile.DefaultSchool holds the default value on creation for the school field.
	lessonprofile.DefaultSchool = lessonprofileDescSchool.Default.(string)
	// lessonprofileDescRegion is the schema descriptor for region field.
	lessonprofileDescRegion := lessonprofileFields[2].Descriptor()
	// lessonprofile.DefaultRegion holds the default value on creation for the region field.
	lessonprofile.DefaultRegion = lessonprofileDescRegion.Default.(string)
	// lessonprofileDescSubject is the schema descriptor for subject field.
	lessonprofileDescSubject := lessonprofileFields[3].Descriptor()
	// lessonprofile.DefaultSubject holds the default value on creation for the subject field.
	lessonprofile.DefaultSubject = lessonprofileDescSubject.Default.(string)
	// lessonprofileDescGrade is the schema descriptor for grade field.
	lessonprofileDescGrade := lessonprofileFields[4].Descriptor()
	// lessonprofile.DefaultGrade holds the default value on creation for the grade field.
	lessonprofile.DefaultGrade = lessonprofileDescGrade.Default.(string)
	// lessonprofileDescPrincipal is the schema descriptor for principal field.
	lessonprofileDescPrincipal := lessonprofileFields[5].Descriptor()
	// lessonprofile.DefaultPrincipal holds the default value on creation for the principal field.
	lessonprofile.DefaultPrincipal = lessonprofileDescPrincipal.Default.(string)
	// lessonprofileDescUpdatedAt is the schema descriptor for updated_at field.
	lessonprofileDescUpdatedAt := lessonprofileFields[6].Descriptor()
	// lessonprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonprofile.DefaultUpdatedAt = lessonprofileDescUpdatedAt.Default.(func() time.Time)
	// lessonprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonprofile.UpdateDefaultUpdatedAt = lessonprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
