// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Yashshokeen-11/ALP/ent/concept"
	"github.com/Yashshokeen-11/ALP/ent/llmrequestevent"
	"github.com/Yashshokeen-11/ALP/ent/masteryfact"
	"github.com/Yashshokeen-11/ALP/ent/mistakerecord"
	"github.com/Yashshokeen-11/ALP/ent/pathevent"
	"github.com/Yashshokeen-11/ALP/ent/prereqedge"
	"github.com/Yashshokeen-11/ALP/ent/reviewstate"
	"github.com/Yashshokeen-11/ALP/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conceptFields := schema.Concept{}.Fields()
	_ = conceptFields
	// conceptDescConceptID is the schema descriptor for concept_id field.
	conceptDescConceptID := conceptFields[0].Descriptor()
	// concept.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	concept.ConceptIDValidator = conceptDescConceptID.Validators[0].(func(string) error)
	// conceptDescSubjectID is the schema descriptor for subject_id field.
	conceptDescSubjectID := conceptFields[1].Descriptor()
	// concept.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	concept.SubjectIDValidator = conceptDescSubjectID.Validators[0].(func(string) error)
	// conceptDescTitle is the schema descriptor for title field.
	conceptDescTitle := conceptFields[2].Descriptor()
	// concept.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	concept.TitleValidator = conceptDescTitle.Validators[0].(func(string) error)
	// conceptDescDifficulty is the schema descriptor for difficulty field.
	conceptDescDifficulty := conceptFields[3].Descriptor()
	// concept.DefaultDifficulty holds the default value on creation for the difficulty field.
	concept.DefaultDifficulty = conceptDescDifficulty.Default.(float64)
	// conceptDescEstimatedMins is the schema descriptor for estimated_mins field.
	conceptDescEstimatedMins := conceptFields[4].Descriptor()
	// concept.EstimatedMinsValidator is a validator for the "estimated_mins" field. It is called by the builders before save.
	concept.EstimatedMinsValidator = conceptDescEstimatedMins.Validators[0].(func(int) error)
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
	masteryfactFields := schema.MasteryFact{}.Fields()
	_ = masteryfactFields
	// masteryfactDescLearnerID is the schema descriptor for learner_id field.
	masteryfactDescLearnerID := masteryfactFields[0].Descriptor()
	// masteryfact.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryfact.LearnerIDValidator = masteryfactDescLearnerID.Validators[0].(func(string) error)
	// masteryfactDescConceptID is the schema descriptor for concept_id field.
	masteryfactDescConceptID := masteryfactFields[1].Descriptor()
	// masteryfact.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryfact.ConceptIDValidator = masteryfactDescConceptID.Validators[0].(func(string) error)
	// masteryfactDescScore is the schema descriptor for score field.
	masteryfactDescScore := masteryfactFields[2].Descriptor()
	// masteryfact.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	masteryfact.ScoreValidator = masteryfactDescScore.Validators[0].(func(float64) error)
	// masteryfactDescUpdatedAt is the schema descriptor for updated_at field.
	masteryfactDescUpdatedAt := masteryfactFields[3].Descriptor()
	// masteryfact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryfact.DefaultUpdatedAt = masteryfactDescUpdatedAt.Default.(func() time.Time)
	// masteryfact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryfact.UpdateDefaultUpdatedAt = masteryfactDescUpdatedAt.UpdateDefault.(func() time.Time)
	mistakerecordFields := schema.MistakeRecord{}.Fields()
	_ = mistakerecordFields
	// mistakerecordDescLearnerID is the schema descriptor for learner_id field.
	mistakerecordDescLearnerID := mistakerecordFields[0].Descriptor()
	// mistakerecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	mistakerecord.LearnerIDValidator = mistakerecordDescLearnerID.Validators[0].(func(string) error)
	// mistakerecordDescConceptID is the schema descriptor for concept_id field.
	mistakerecordDescConceptID := mistakerecordFields[1].Descriptor()
	// mistakerecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	mistakerecord.ConceptIDValidator = mistakerecordDescConceptID.Validators[0].(func(string) error)
	// mistakerecordDescKind is the schema descriptor for kind field.
	mistakerecordDescKind := mistakerecordFields[2].Descriptor()
	// mistakerecord.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	mistakerecord.KindValidator = mistakerecordDescKind.Validators[0].(func(string) error)
	// mistakerecordDescCount is the schema descriptor for count field.
	mistakerecordDescCount := mistakerecordFields[3].Descriptor()
	// mistakerecord.DefaultCount holds the default value on creation for the count field.
	mistakerecord.DefaultCount = mistakerecordDescCount.Default.(int)
	// mistakerecord.CountValidator is a validator for the "count" field. It is called by the builders before save.
	mistakerecord.CountValidator = mistakerecordDescCount.Validators[0].(func(int) error)
	patheventMixin := schema.PathEvent{}.Mixin()
	patheventMixinFields0 := patheventMixin[0].Fields()
	_ = patheventMixinFields0
	patheventFields := schema.PathEvent{}.Fields()
	_ = patheventFields
	// patheventDescTimestamp is the schema descriptor for timestamp field.
	patheventDescTimestamp := patheventMixinFields0[1].Descriptor()
	// pathevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pathevent.DefaultTimestamp = patheventDescTimestamp.Default.(func() time.Time)
	// patheventDescLearnerID is the schema descriptor for learner_id field.
	patheventDescLearnerID := patheventFields[0].Descriptor()
	// pathevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	pathevent.LearnerIDValidator = patheventDescLearnerID.Validators[0].(func(string) error)
	// patheventDescSubjectID is the schema descriptor for subject_id field.
	patheventDescSubjectID := patheventFields[1].Descriptor()
	// pathevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	pathevent.SubjectIDValidator = patheventDescSubjectID.Validators[0].(func(string) error)
	// patheventDescConceptCount is the schema descriptor for concept_count field.
	patheventDescConceptCount := patheventFields[3].Descriptor()
	// pathevent.ConceptCountValidator is a validator for the "concept_count" field. It is called by the builders before save.
	pathevent.ConceptCountValidator = patheventDescConceptCount.Validators[0].(func(int) error)
	// patheventDescGapCount is the schema descriptor for gap_count field.
	patheventDescGapCount := patheventFields[4].Descriptor()
	// pathevent.GapCountValidator is a validator for the "gap_count" field. It is called by the builders before save.
	pathevent.GapCountValidator = patheventDescGapCount.Validators[0].(func(int) error)
	// patheventDescTotalMinutes is the schema descriptor for total_minutes field.
	patheventDescTotalMinutes := patheventFields[5].Descriptor()
	// pathevent.TotalMinutesValidator is a validator for the "total_minutes" field. It is called by the builders before save.
	pathevent.TotalMinutesValidator = patheventDescTotalMinutes.Validators[0].(func(int) error)
	prereqedgeFields := schema.PrereqEdge{}.Fields()
	_ = prereqedgeFields
	// prereqedgeDescPrerequisiteID is the schema descriptor for prerequisite_id field.
	prereqedgeDescPrerequisiteID := prereqedgeFields[0].Descriptor()
	// prereqedge.PrerequisiteIDValidator is a validator for the "prerequisite_id" field. It is called by the builders before save.
	prereqedge.PrerequisiteIDValidator = prereqedgeDescPrerequisiteID.Validators[0].(func(string) error)
	// prereqedgeDescDependentID is the schema descriptor for dependent_id field.
	prereqedgeDescDependentID := prereqedgeFields[1].Descriptor()
	// prereqedge.DependentIDValidator is a validator for the "dependent_id" field. It is called by the builders before save.
	prereqedge.DependentIDValidator = prereqedgeDescDependentID.Validators[0].(func(string) error)
	// prereqedgeDescSubjectID is the schema descriptor for subject_id field.
	prereqedgeDescSubjectID := prereqedgeFields[2].Descriptor()
	// prereqedge.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	prereqedge.SubjectIDValidator = prereqedgeDescSubjectID.Validators[0].(func(string) error)
	reviewstateFields := schema.ReviewState{}.Fields()
	_ = reviewstateFields
	// reviewstateDescLearnerID is the schema descriptor for learner_id field.
	reviewstateDescLearnerID := reviewstateFields[0].Descriptor()
	// reviewstate.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewstate.LearnerIDValidator = reviewstateDescLearnerID.Validators[0].(func(string) error)
	// reviewstateDescConceptID is the schema descriptor for concept_id field.
	reviewstateDescConceptID := reviewstateFields[1].Descriptor()
	// reviewstate.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	reviewstate.ConceptIDValidator = reviewstateDescConceptID.Validators[0].(func(string) error)
	// reviewstateDescStage is the schema descriptor for stage field.
	reviewstateDescStage := reviewstateFields[2].Descriptor()
	// reviewstate.DefaultStage holds the default value on creation for the stage field.
	reviewstate.DefaultStage = reviewstateDescStage.Default.(int)
	// reviewstate.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	reviewstate.StageValidator = reviewstateDescStage.Validators[0].(func(int) error)
	// reviewstateDescConsecutiveHits is the schema descriptor for consecutive_hits field.
	reviewstateDescConsecutiveHits := reviewstateFields[4].Descriptor()
	// reviewstate.DefaultConsecutiveHits holds the default value on creation for the consecutive_hits field.
	reviewstate.DefaultConsecutiveHits = reviewstateDescConsecutiveHits.Default.(int)
	// reviewstate.ConsecutiveHitsValidator is a validator for the "consecutive_hits" field. It is called by the builders before save.
	reviewstate.ConsecutiveHitsValidator = reviewstateDescConsecutiveHits.Validators[0].(func(int) error)
	// reviewstateDescGraduated is the schema descriptor for graduated field.
	reviewstateDescGraduated := reviewstateFields[5].Descriptor()
	// reviewstate.DefaultGraduated holds the default value on creation for the graduated field.
	reviewstate.DefaultGraduated = reviewstateDescGraduated.Default.(bool)
}
