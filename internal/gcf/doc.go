// Package gcf deploys a scaffolded project to Google Cloud Functions by
// shelling out to the gcloud CLI. The subprocess sits behind the Runner
// interface so the deploy flow can be exercised without a real gcloud.
package gcf
