package ai

// Prompt templates for the three oracle operations. Wording is kept close
// to the production prompts the evaluation history was collected under;
// rephrasing shifts score distributions.

const skillMatchPrompt = `Analyze the skill match between a candidate and a job position:
Candidate Skills: %s
Required Job Skills: %s

Please evaluate the match and provide:
1. A match score between 0 and 100
2. Consider both exact matches and related skills
3. Weight more important skills higher (e.g., primary programming languages)

Return only the numeric score.`

const generateQuestionsPrompt = `Generate %d interview questions for a %s position.
Requirements: %s
Required skills: %s

Please generate a mix of technical, behavioral, and experience-based questions.
Format the response as a JSON array with each question having 'text' and 'type' properties.
Type should be one of: TECHNICAL, BEHAVIORAL, or EXPERIENCE.`

const evaluateResponsePrompt = `Analyze the following interview response:
Question: %s
Response: %s
Job Requirements: %s

Please evaluate the response and provide:
1. A score between 0 and 100
2. Detailed feedback on the response

Format the response as a JSON object with 'score' and 'feedback' properties.`
