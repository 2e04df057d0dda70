// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/brown-ivl/diva360-fetch/sdk/storage"
)

// FetchAll processes every scene of the request in order. The first
// failing step aborts the whole batch; the returned error is a *StepError
// naming the scene and step.
func (s *Service) FetchAll(ctx context.Context, req Request) error {
	log := s.log.WithField("run_id", runID())
	log.WithField("scenes", len(req.Scenes)).Infof("fetching into %s", req.BasePath)

	for i, scene := range req.Scenes {
		log.WithField("scene", scene).Infof("processing scene %d/%d", i+1, len(req.Scenes))
		if err := s.fetchScene(ctx, req.BasePath, scene); err != nil {
			return err
		}
	}

	log.Info("all scenes fetched")
	return nil
}

// fetchScene runs the fixed per-scene sequence: ensure the directory,
// download and extract the frame archive, drop the archive, then download
// the three transforms files.
func (s *Service) fetchScene(ctx context.Context, basePath, scene string) error {
	sceneDir := filepath.Join(basePath, scene)
	if err := os.MkdirAll(sceneDir, 0o755); err != nil {
		return &StepError{Scene: scene, Step: StepMkdir, Err: err}
	}

	archivePath := filepath.Join(sceneDir, ArchiveName)
	if err := s.downloadArchive(ctx, remoteKey(scene, ArchiveName), archivePath); err != nil {
		return &StepError{Scene: scene, Step: StepArchive, Err: err}
	}

	if err := s.extractArchive(archivePath, sceneDir); err != nil {
		return &StepError{Scene: scene, Step: StepExtract, Err: err}
	}

	// Extraction produced the frame tree; the archive is transient.
	if err := os.Remove(archivePath); err != nil {
		return &StepError{Scene: scene, Step: StepCleanup, Err: err}
	}

	for _, name := range MetadataFiles {
		if err := s.downloadFile(ctx, remoteKey(scene, name), filepath.Join(sceneDir, name)); err != nil {
			return &StepError{Scene: scene, Step: StepMetadata, Err: err}
		}
	}

	return nil
}

func remoteKey(scene, name string) string {
	return path.Join(RemotePrefix, scene, name)
}

// downloadArchive fetches the frame archive to destPath, preferring the
// store's direct WriterAt path when available.
func (s *Service) downloadArchive(ctx context.Context, key, destPath string) error {
	dl, ok := s.store.(storage.Downloader)
	if !ok {
		return s.downloadFile(ctx, key, destPath)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create local file: %w", err)
	}

	gp := newProgress(s.progress, 0)
	_, err = dl.DownloadTo(ctx, key, &progressWriterAt{w: f, gp: gp})
	gp.done()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(destPath)
		return err
	}
	return nil
}

// downloadFile streams one object to destPath.
func (s *Service) downloadFile(ctx context.Context, key, destPath string) error {
	rdr, size, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	defer rdr.Close()

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create local file: %w", err)
	}

	gp := newProgress(s.progress, size)
	tee := io.TeeReader(rdr, &progressWriter{gp: gp})
	_, err = io.Copy(f, tee)
	gp.done()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(destPath)
		return fmt.Errorf("failed to write to local file: %w", err)
	}
	return nil
}

func (s *Service) extractArchive(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	return extractTarGz(f, destDir)
}
